package propbag

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// ErrContextTooDeep indicates a context value nests deeper than the
// configured dump depth.
var ErrContextTooDeep = errors.New("context exceeds dump depth")

// Describer is implemented by context values that render their own
// diagnostic dump. depth is the accessor's configured context depth.
// Returning an error drops the dump from the failure message.
type Describer interface {
	Describe(depth int) (string, error)
}

// bagDumper renders the full bag in debug diagnostics.
var bagDumper = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// buildMessage appends the context type and dump to msg. If the context
// cannot be dumped, msg is returned unchanged.
func (a *Accessor) buildMessage(msg string, detail any) string {
	if detail == nil {
		return msg
	}
	dump, err := describe(detail, a.depth)
	if err != nil {
		return msg
	}
	return fmt.Sprintf("%s - context (%T): \n%s", msg, detail, dump)
}

// describe renders v with its Describer or as indented JSON limited to depth.
// Panics raised while rendering are returned as errors.
func describe(v any, depth int) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = "", fmt.Errorf("describe %T: panic: %v", v, r)
		}
	}()

	if d, ok := v.(Describer); ok {
		return d.Describe(depth)
	}

	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", err
	}
	if n := jsonDepth(data); n > depth {
		return "", fmt.Errorf("%w: %d > %d", ErrContextTooDeep, n, depth)
	}
	return string(data), nil
}

// jsonDepth returns the deepest object or array nesting in data.
// A scalar has depth 0 and a flat object depth 1.
func jsonDepth(data []byte) int {
	dec := json.NewDecoder(bytes.NewReader(data))
	depth, deepest := 0, 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return deepest
		}
		delim, ok := tok.(json.Delim)
		if !ok {
			continue
		}
		switch delim {
		case '{', '[':
			depth++
			deepest = max(deepest, depth)
		case '}', ']':
			depth--
		}
	}
}

// writeDiagnostic writes the debug block for a failed assertion.
func (a *Accessor) writeDiagnostic(b Bag, key, failureID, msg string) error {
	var sb strings.Builder
	sb.WriteString("\n--- property error ---\n")
	fmt.Fprintf(&sb, "message: %s\n", msg)
	fmt.Fprintf(&sb, "key: %s\n", key)
	fmt.Fprintf(&sb, "failure id: %s\n", failureID)
	sb.WriteString("bag dump: ")
	sb.WriteString(bagDumper.Sdump(b))
	sb.WriteString("----------------------\n")

	_, err := io.WriteString(a.out, sb.String())
	return err
}
