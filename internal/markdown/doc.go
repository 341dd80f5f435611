// Package markdown converts a deliberately minimal Markdown subset into HTML
// fragments. It recognizes three heading levels, bold and italic emphasis,
// fenced and inline code, inline links, flat lists, and paragraphs. It is not
// a CommonMark implementation and never will be: the documentation corpus it
// was written for only uses this subset, and a conformant engine would change
// the rendering of every edge case the corpus relies on.
//
// The conversion is an ordered chain of pure text-to-text rules. The order is
// part of the contract: bold must run before italic so the inner asterisks of
// a bold span are not misread, and fenced code must run before inline code so
// backticks inside a fence are not converted twice.
package markdown
