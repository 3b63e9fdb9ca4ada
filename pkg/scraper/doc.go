// Package scraper probes the league logo ID range and archives the results.
//
// The Scraper walks IDs in ascending order, one request at a time. For each
// ID it requests {BaseURL}/{id}.png and stores the body as {id}.png in the
// download directory when the host answers 2xx. Any failure (a 404, another
// non-2xx status, a network error, a failed write) removes whatever file the
// ID had and is reported as a skip; the loop always continues.
//
// When the loop finishes the whole download directory is zipped exactly
// once, even if nothing was downloaded.
//
// Usage:
//
//	s, err := scraper.New(cfg, scraper.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//
//	summary, err := s.Run()
//
// The ID range and output locations in DefaultOptions are fixed; Options
// exists so tests can point the scraper at a local server and temp dirs.
package scraper
