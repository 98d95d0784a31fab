package std

import (
	"io"
	"net/http"
	"strconv"

	"github.com/mrya-lang/mrya/eval"
	"github.com/mrya-lang/mrya/values"
)

// httpState holds the mutable server state a single `http` module instance
// owns: the route table built up by get()/post() calls before listen()
// blocks. Grounded on original_source/src/modules/http_server.py's
// request-map shape (method/path/query/headers/body/form/params), rebuilt
// against net/http/ServeMux rather than a hand-rolled socket loop.
type httpState struct {
	mux *http.ServeMux
}

// NewHTTPModule builds the `http` native module (spec §7 Domain stack).
func NewHTTPModule() *values.Module {
	st := &httpState{mux: http.NewServeMux()}
	b := NewModule("http")
	b.Aware("get", 2, st.route("GET"))
	b.Aware("post", 2, st.route("POST"))
	b.Aware("put", 2, st.route("PUT"))
	b.Aware("delete", 2, st.route("DELETE"))
	b.Aware("listen", 1, st.listen)
	return b.Build()
}

// route registers handler (a Mrya callable) to run for method+path,
// dispatched through the interpreter handle injected as args[0].
//
// Syntax: http.get(path, handler) -- handler(request) -> string | map
func (st *httpState) route(method string) values.NativeFunc {
	return func(args []values.Value) (values.Value, error) {
		handle, ok := args[0].(*eval.InterpHandle)
		if !ok {
			return nil, ArgError(method, "internal: missing interpreter handle")
		}
		path, ok := AsString(args[1])
		if !ok {
			return nil, WrongType(method, 0, "string", args[1])
		}
		handler := args[2]

		st.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				http.NotFound(w, r)
				return
			}
			req := buildRequestMap(r)
			interpLock.Lock()
			result, err := handle.It.Invoke(handler, []values.Value{req})
			interpLock.Unlock()
			if err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				io.WriteString(w, err.Error())
				return
			}
			writeResponse(w, result)
		})
		return values.NilValue, nil
	}
}

// Syntax: http.listen(port) -- blocks serving on :port
func (st *httpState) listen(args []values.Value) (values.Value, error) {
	// args[0] is the injected interpreter handle; the port is args[1].
	port, ok := AsInt(args[1])
	if !ok {
		return nil, WrongType("listen", 0, "int", args[1])
	}
	if err := http.ListenAndServe(":"+strconv.FormatInt(port, 10), st.mux); err != nil {
		return nil, ArgError("listen", "server error: %v", err)
	}
	return values.NilValue, nil
}

// buildRequestMap assembles the request map shape recovered from
// original_source: method, path, query, headers, body, form, params.
func buildRequestMap(r *http.Request) *values.Map {
	m := values.NewMap()
	m.Set(Str("method"), Str(r.Method))
	m.Set(Str("path"), Str(r.URL.Path))

	query := values.NewMap()
	for k, vs := range r.URL.Query() {
		if len(vs) > 0 {
			query.Set(Str(k), Str(vs[0]))
		}
	}
	m.Set(Str("query"), query)

	headers := values.NewMap()
	for k, vs := range r.Header {
		if len(vs) > 0 {
			headers.Set(Str(k), Str(vs[0]))
		}
	}
	m.Set(Str("headers"), headers)

	body, _ := io.ReadAll(r.Body)
	m.Set(Str("body"), Str(string(body)))

	form := values.NewMap()
	if err := r.ParseForm(); err == nil {
		for k, vs := range r.Form {
			if len(vs) > 0 {
				form.Set(Str(k), Str(vs[0]))
			}
		}
	}
	m.Set(Str("form"), form)

	params := values.NewMap()
	m.Set(Str("params"), params)

	return m
}

// writeResponse lets a handler return either a plain string (200, text
// body) or a map {status, body, headers} for finer control.
func writeResponse(w http.ResponseWriter, result values.Value) {
	if m, ok := result.(*values.Map); ok {
		status := http.StatusOK
		if sv, ok := m.Get(Str("status")); ok {
			if n, ok := AsInt(sv); ok {
				status = int(n)
			}
		}
		if hv, ok := m.Get(Str("headers")); ok {
			if hm, ok := hv.(*values.Map); ok {
				for _, p := range hm.Pairs() {
					w.Header().Set(p[0].String(), p[1].String())
				}
			}
		}
		w.WriteHeader(status)
		if bv, ok := m.Get(Str("body")); ok {
			io.WriteString(w, bv.String())
		}
		return
	}
	io.WriteString(w, result.String())
}
