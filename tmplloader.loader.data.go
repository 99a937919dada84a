package tmplloader

import (
	"sync"

	"github.com/itsatony/go-tmplloader/internal"
	"go.uber.org/zap"
)

// SetTemplateData publishes data to the loader's DataContext under varName
// ("data" when empty) so included templates can read it. Maps, slices and
// scalars are converted to TemplateData first; structs and pointers are
// published as they are. It returns the Loader for chaining.
func (l *Loader) SetTemplateData(data any, varName string) *Loader {
	if varName == "" {
		varName = DefaultDataVarName
	}

	l.data.Set(varName, toTemplateValue(data))

	if varName != DefaultDataVarName {
		l.varsMu.Lock()
		l.varNames = append(l.varNames, varName)
		l.varsMu.Unlock()
	}

	l.logger.Debug(LogMsgDataPublished, zap.String(LogFieldVarName, varName))
	return l
}

// PublishTemplateData is SetTemplateData returning a handle that removes
// the published variable again. Release it when the template that needs the
// data has been loaded.
func (l *Loader) PublishTemplateData(data any, varName string) *DataHandle {
	if varName == "" {
		varName = DefaultDataVarName
	}
	l.SetTemplateData(data, varName)
	return &DataHandle{data: l.data, name: varName}
}

// UnsetTemplateData removes every variable ever published through this
// loader from its DataContext. Calling it again is a no-op.
func (l *Loader) UnsetTemplateData() *Loader {
	l.varsMu.Lock()
	names := make([]string, len(l.varNames))
	copy(names, l.varNames)
	l.varsMu.Unlock()

	seen := make(map[string]struct{}, len(names))
	removed := 0
	for _, name := range names {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if l.data.Delete(name) {
			removed++
		}
	}

	l.logger.Debug(LogMsgDataUnset, zap.Int(LogFieldVarCount, removed))
	return l
}

// Close releases all published template data. It always returns nil.
func (l *Loader) Close() error {
	l.UnsetTemplateData()
	return nil
}

// DataHandle removes one published template variable on Release.
type DataHandle struct {
	once sync.Once
	data *DataContext
	name string
}

// Name returns the variable name the handle controls.
func (h *DataHandle) Name() string {
	return h.name
}

// Release removes the variable from the DataContext. Only the first call
// has an effect.
func (h *DataHandle) Release() {
	h.once.Do(func() {
		h.data.Delete(h.name)
	})
}

// toTemplateValue casts data to the object form templates read.
func toTemplateValue(data any) any {
	obj, ok := internal.ToObject(data)
	if !ok {
		return data
	}
	return TemplateData(obj)
}
