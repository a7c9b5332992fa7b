// Package loader turns input documents into catalogue mutations.
//
// Two input formats are accepted and both decode into a Document:
//
//   - JSON documents with base_requests, stat_requests, render_settings and
//     routing_settings sections
//   - line-oriented text commands, a base section followed by a stat section,
//     each preceded by its line count
//
// # Usage
//
//	l := loader.New(loader.WithLogger(log))
//	doc, err := l.DecodeJSON(os.Stdin)
//	if err != nil {
//	    return err
//	}
//	cat := catalogue.New()
//	if err := l.Apply(cat, doc.BaseRequests); err != nil {
//	    return err
//	}
//
// Apply adds every stop first, then every road distance, then every bus, so
// requests may reference stops defined later in the same document. Stops
// referenced but never defined are reported once per load through the
// warning aggregator; in strict catalogues they fail the load.
package loader
