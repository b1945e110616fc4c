// Package slugroute exposes slug lookups over HTTP with chi.
//
// [Middleware] resolves a "{slug}" URL parameter to a document and puts it in
// the request context. Requests made with a retired or differently cased slug
// are redirected (301 by default) to the same URL carrying the live slug,
// which keeps old links working after a rename:
//
//	r := chi.NewRouter()
//	r.Use(slugroute.RequestID, slugroute.Recover(log))
//	r.With(slugroute.Middleware(repo, "Article")).Get("/articles/{slug}", func(w http.ResponseWriter, r *http.Request) {
//		doc, _ := slugroute.DocumentFromContext(r.Context())
//		// render doc
//	})
//
// [Handler] serves any registered type as JSON from a "/{type}/{slug}" route.
// [Liveness] and [Readiness] answer health probes.
package slugroute
