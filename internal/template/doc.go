// Package template wraps rendered HTML fragments in a full page shell.
//
// A page template is plain text carrying two placeholder tokens, one for the
// page title and one for the body content. Substitution is verbatim: callers
// are trusted to pass safe HTML, and no escaping is applied. When no template
// is configured, a built-in minimal HTML5 skeleton is used instead, so
// binding is total and never fails.
package template
