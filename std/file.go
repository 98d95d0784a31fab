package std

import (
	"bufio"
	"io"
	"os"

	"github.com/mrya-lang/mrya/values"
)

// handle is the native module's own file value, replacing the teacher's
// file package (built on the now-removed GoMixObject) with one instance
// registered as opaque native state rather than its own Value variant:
// Mrya user code never inspects a handle's shape, only passes it back into
// the other file.* functions (spec §7 Domain stack, file module).
type handle struct {
	f    *os.File
	r    *bufio.Reader
	path string
}

func (*handle) Type() values.Type { return values.Type("native:file") }
func (h *handle) String() string  { return "<file " + h.path + ">" }
func (h *handle) Inspect() string { return h.String() }

// NewFileModule builds the `file` native module (spec §7 Domain stack),
// grounded on the teacher's file/file.go fopen/fclose/fread/fwrite/fseek/
// ftell set, generalized to line-oriented reads and a read_all(path)
// for the common whole-file read. There is no whole-file write.
func NewFileModule() *values.Module {
	b := NewModule("file")
	b.Func("open", 2, fileOpen)
	b.Func("close", 1, fileClose)
	b.Func("read", 2, fileRead)
	b.Func("read_line", 1, fileReadLine)
	b.Func("read_all", 1, fileReadAll)
	b.Func("write", 2, fileWrite)
	b.Func("seek", 3, fileSeek)
	b.Func("tell", 1, fileTell)
	b.Func("exists", 1, fileExists)
	b.Func("remove", 1, fileRemove)
	return b.Build()
}

func asHandle(fn string, v values.Value) (*handle, error) {
	h, ok := v.(*handle)
	if !ok {
		return nil, WrongType(fn, 0, "file handle", v)
	}
	return h, nil
}

// Syntax: open(path, mode) -- mode is "r", "w", "a", or "r+"
func fileOpen(args []values.Value) (values.Value, error) {
	path, ok := AsString(args[0])
	if !ok {
		return nil, WrongType("open", 0, "string", args[0])
	}
	mode, ok := AsString(args[1])
	if !ok {
		return nil, WrongType("open", 1, "string", args[1])
	}

	var flag int
	switch mode {
	case "r":
		flag = os.O_RDONLY
	case "w":
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "a":
		flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case "r+":
		flag = os.O_RDWR
	default:
		return nil, ArgError("open", "invalid file mode %q", mode)
	}

	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return nil, ArgError("open", "could not open %q: %v", path, err)
	}
	return &handle{f: f, r: bufio.NewReader(f), path: path}, nil
}

// Syntax: close(h)
func fileClose(args []values.Value) (values.Value, error) {
	h, err := asHandle("close", args[0])
	if err != nil {
		return nil, err
	}
	if err := h.f.Close(); err != nil {
		return nil, ArgError("close", "failed to close %q: %v", h.path, err)
	}
	return values.NilValue, nil
}

// Syntax: read(h, n) -- reads up to n bytes
func fileRead(args []values.Value) (values.Value, error) {
	h, err := asHandle("read", args[0])
	if err != nil {
		return nil, err
	}
	n, ok := AsInt(args[1])
	if !ok || n < 0 {
		return nil, WrongType("read", 1, "non-negative int", args[1])
	}
	buf := make([]byte, n)
	read, err := h.f.Read(buf)
	if err != nil && err != io.EOF {
		return nil, ArgError("read", "read failed on %q: %v", h.path, err)
	}
	return Str(string(buf[:read])), nil
}

// Syntax: read_line(h) -- nil at EOF
func fileReadLine(args []values.Value) (values.Value, error) {
	h, err := asHandle("read_line", args[0])
	if err != nil {
		return nil, err
	}
	line, err := h.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, ArgError("read_line", "read failed on %q: %v", h.path, err)
	}
	if line == "" && err == io.EOF {
		return values.NilValue, nil
	}
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return Str(line), nil
}

// Syntax: read_all(path) -- convenience wrapper, opens+reads+closes
func fileReadAll(args []values.Value) (values.Value, error) {
	path, ok := AsString(args[0])
	if !ok {
		return nil, WrongType("read_all", 0, "string", args[0])
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ArgError("read_all", "could not read %q: %v", path, err)
	}
	return Str(string(data)), nil
}

// Syntax: write(h, content)
func fileWrite(args []values.Value) (values.Value, error) {
	h, err := asHandle("write", args[0])
	if err != nil {
		return nil, err
	}
	content, ok := AsString(args[1])
	if !ok {
		return nil, WrongType("write", 1, "string", args[1])
	}
	n, err := h.f.WriteString(content)
	if err != nil {
		return nil, ArgError("write", "write failed on %q: %v", h.path, err)
	}
	return I(int64(n)), nil
}

// Syntax: seek(h, offset, whence) -- whence 0=start, 1=current, 2=end
func fileSeek(args []values.Value) (values.Value, error) {
	h, err := asHandle("seek", args[0])
	if err != nil {
		return nil, err
	}
	offset, ok := AsInt(args[1])
	if !ok {
		return nil, WrongType("seek", 1, "int", args[1])
	}
	whence, ok := AsInt(args[2])
	if !ok {
		return nil, WrongType("seek", 2, "int", args[2])
	}
	pos, err := h.f.Seek(offset, int(whence))
	if err != nil {
		return nil, ArgError("seek", "seek failed on %q: %v", h.path, err)
	}
	h.r.Reset(h.f)
	return I(pos), nil
}

// Syntax: tell(h)
func fileTell(args []values.Value) (values.Value, error) {
	h, err := asHandle("tell", args[0])
	if err != nil {
		return nil, err
	}
	pos, err := h.f.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, ArgError("tell", "tell failed on %q: %v", h.path, err)
	}
	return I(pos), nil
}

// Syntax: exists(path)
func fileExists(args []values.Value) (values.Value, error) {
	path, ok := AsString(args[0])
	if !ok {
		return nil, WrongType("exists", 0, "string", args[0])
	}
	_, err := os.Stat(path)
	return B(err == nil), nil
}

// Syntax: remove(path)
func fileRemove(args []values.Value) (values.Value, error) {
	path, ok := AsString(args[0])
	if !ok {
		return nil, WrongType("remove", 0, "string", args[0])
	}
	if err := os.Remove(path); err != nil {
		return nil, ArgError("remove", "could not remove %q: %v", path, err)
	}
	return values.NilValue, nil
}
