// Package fieldset models the flat configuration object a page carries on its
// root element. Keys keep insertion order and values are a tagged variant
// (Text or Number) so renderers never inspect dynamic types. Parsing accepts
// strict JSON first and falls back to a YAML flow mapping, which covers the
// `{name: 'J', age: 2}` object-literal form emitted by the site builder. Any
// other payload fails with ErrConfigParse.
package fieldset
