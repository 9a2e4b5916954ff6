// Package fetch implements HTTP retrieval of monitored pages.
// A single GET per URL produces the page content, decoded to UTF-8, with
// the page title extracted from the HTML. There is no retry and no
// caching; one call maps to one request.
package fetch
