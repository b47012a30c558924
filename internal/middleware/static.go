package middleware

import (
	"net/http"
	"path"
	"strings"
)

// Static serves files under dir for GET and HEAD requests before handing
// the request to next. HTML navigations to paths without a file extension
// are answered with dir/index.html so client side routes survive a reload.
// Anything not found on disk falls through to next.
func Static(dir string) func(http.Handler) http.Handler {
	root := http.Dir(dir)
	fs := http.FileServer(root)

	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if dir == "" || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
				next.ServeHTTP(w, r)
				return
			}

			name := path.Clean("/" + r.URL.Path)
			if isFile(root, name) {
				fs.ServeHTTP(w, r)
				return
			}

			if acceptsHTML(r) && !strings.Contains(path.Base(name), ".") && serveIndex(w, r, root) {
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

func isFile(root http.FileSystem, name string) bool {
	f, err := root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()
	st, err := f.Stat()
	return err == nil && !st.IsDir()
}

// serveIndex writes /index.html without FileServer's index redirect.
func serveIndex(w http.ResponseWriter, r *http.Request, root http.FileSystem) bool {
	f, err := root.Open("/index.html")
	if err != nil {
		return false
	}
	defer f.Close()
	st, err := f.Stat()
	if err != nil || st.IsDir() {
		return false
	}
	http.ServeContent(w, r, "index.html", st.ModTime(), f)
	return true
}

func acceptsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || strings.Contains(accept, "application/xhtml+xml")
}
