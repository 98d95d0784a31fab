/*
Package loader implements Mrya's module resolution and caching (spec §4.5):
native module lookup, `package:`-prefixed installed packages, relative
`.mrya` file resolution, cycle-safe caching, and a current-directory stack so
relative imports inside a loaded file resolve against that file's own
directory. Grounded on the teacher's std.Packages registry lookup
(eval/eval_controls.go evalImportStatement), generalized with real file I/O
since Mrya, unlike go-mix, loads source files rather than only built-in
packages.
*/
package loader

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mrya-lang/mrya/environment"
	"github.com/mrya-lang/mrya/errs"
	"github.com/mrya-lang/mrya/eval"
	"github.com/mrya-lang/mrya/internal/mryalog"
	"github.com/mrya-lang/mrya/parser"
	"github.com/mrya-lang/mrya/values"
)

// Loader resolves, loads, and caches Mrya source modules and native modules.
// It implements eval.ModuleLoader.
type Loader struct {
	mu      sync.Mutex
	cache   map[string]values.Value
	natives map[string]*values.Module

	dirs        []string // stack of currently-loading directories, innermost last
	installRoot string

	log *zap.SugaredLogger
}

// New builds a Loader rooted at startDir (the directory relative paths in
// the initially-run file resolve against) and installRoot (the base of
// `package:` imports, spec §4.5 rule 2 — typically mrya.yaml's install_root).
func New(startDir, installRoot string, log *zap.SugaredLogger) *Loader {
	if log == nil {
		log = mryalog.Nop()
	}
	return &Loader{
		cache:       make(map[string]values.Value),
		natives:     make(map[string]*values.Module),
		dirs:        []string{startDir},
		installRoot: installRoot,
		log:         log,
	}
}

// RegisterNative installs a host module under the name user code imports it
// by (spec §4.5 rule 1, §4.6).
func (l *Loader) RegisterNative(name string, mod *values.Module) {
	l.natives[name] = mod
}

// CurrentDir reports the directory relative imports resolve against: the
// directory of whichever file is currently loading, or the starting
// directory at top level (spec §4.5).
func (l *Loader) CurrentDir() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.dirs) == 0 {
		return "."
	}
	return l.dirs[len(l.dirs)-1]
}

// Load resolves pathStr and returns its module value, per the three
// resolution rules in spec §4.5. it is the interpreter whose Global
// environment backs the loaded file's top-level scope.
func (l *Loader) Load(pathStr string, it *eval.Interp) (values.Value, error) {
	if mod, ok := l.natives[pathStr]; ok {
		l.log.Debugw("loader: native module", "path", pathStr)
		return mod, nil
	}

	resolved, err := l.resolvePath(pathStr)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	if cached, ok := l.cache[resolved]; ok {
		l.mu.Unlock()
		l.log.Debugw("loader: cache hit", "path", resolved)
		return cached, nil
	}
	// Insert a placeholder before executing so a re-entrant import of an
	// in-progress module (an import cycle) gets the partially-populated
	// module instead of recursing forever (spec §4.5).
	placeholder := values.NewModule(moduleDisplayName(resolved))
	l.cache[resolved] = placeholder
	l.mu.Unlock()

	l.pushDir(filepath.Dir(resolved))
	defer l.popDir()

	src, err := os.ReadFile(resolved)
	if err != nil {
		l.forget(resolved)
		return nil, errs.New(errs.Runtime, 0, 0, pathStr, "cannot read module %q: %v", pathStr, err)
	}

	stmts, perr := parser.Parse(string(src))
	if perr != nil {
		l.forget(resolved)
		return nil, perr
	}

	moduleEnv := environment.New(it.Global)
	l.log.Debugw("loader: executing module", "path", resolved)
	val, returned, err := it.RunModule(stmts, moduleEnv)
	if err != nil {
		l.forget(resolved)
		return nil, err
	}

	var result values.Value
	if returned {
		result = val
	} else {
		populateModule(placeholder, moduleEnv)
		result = placeholder
	}

	l.mu.Lock()
	l.cache[resolved] = result
	l.mu.Unlock()
	return result, nil
}

func (l *Loader) pushDir(dir string) {
	l.mu.Lock()
	l.dirs = append(l.dirs, dir)
	l.mu.Unlock()
}

func (l *Loader) popDir() {
	l.mu.Lock()
	if len(l.dirs) > 1 {
		l.dirs = l.dirs[:len(l.dirs)-1]
	}
	l.mu.Unlock()
}

func (l *Loader) forget(resolved string) {
	l.mu.Lock()
	delete(l.cache, resolved)
	l.mu.Unlock()
}

// resolvePath implements spec §4.5 rules 2 and 3 (rule 1 is handled in Load
// before path resolution is ever attempted).
func (l *Loader) resolvePath(pathStr string) (string, error) {
	if strings.HasPrefix(pathStr, "package:") {
		name := strings.TrimPrefix(pathStr, "package:")
		if filepath.Ext(name) != "" {
			return filepath.Abs(filepath.Join(l.installRoot, "packages", name))
		}
		return filepath.Abs(filepath.Join(l.installRoot, "packages", name, "main.mrya"))
	}

	rel := pathStr
	if filepath.Ext(rel) == "" {
		rel += ".mrya"
	}
	return filepath.Abs(filepath.Join(l.CurrentDir(), rel))
}

func moduleDisplayName(resolved string) string {
	base := filepath.Base(resolved)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// populateModule fills mod's member map from names bound directly at the
// file's top level (spec §4.5: "named values + declared functions").
func populateModule(mod *values.Module, env *environment.Environment) {
	for _, name := range env.Names() {
		if v, ok := env.Lookup(name); ok {
			mod.Members[name] = v
		}
	}
	mod.DefiningEnv = env
}
