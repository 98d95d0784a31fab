package std

import "github.com/mrya-lang/mrya/values"

// NativeRegistrar is the narrow interface std needs to install its modules
// — satisfied by *loader.Loader without std importing loader directly.
type NativeRegistrar interface {
	RegisterNative(name string, mod *values.Module)
}

// RegisterNatives installs every native module in the domain stack (spec
// §7) under the name user code imports it by.
func RegisterNatives(r NativeRegistrar) {
	r.RegisterNative("math", NewMathModule())
	r.RegisterNative("time", NewTimeModule())
	r.RegisterNative("strings", NewStringsModule())
	r.RegisterNative("regex", NewRegexModule())
	r.RegisterNative("file", NewFileModule())
	r.RegisterNative("json", NewJSONModule())
	r.RegisterNative("html", NewHTMLModule())
	r.RegisterNative("http", NewHTTPModule())
	r.RegisterNative("graphics", NewGraphicsModule())
	r.RegisterNative("crypto", NewCryptoModule())
	r.RegisterNative("convert", NewConvertModule())
	r.RegisterNative("db", NewDBModule())
	r.RegisterNative("async", NewAsyncModule())
}
