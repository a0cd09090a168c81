package chain

import (
	"bytes"
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"strings"

	"github.com/centrifuge/go-substrate-rpc-client/v4/registry"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/pkg/errors"
)

var (
	ErrEventNotFound  = errors.New("expected event not found")
	ErrAmbiguousEvent = errors.New("more than one matching event")
)

// Event is one runtime event emitted by a submitted extrinsic.
type Event struct {
	Name   string         // "Pallet.Variant"
	Fields map[string]any // decoded field values by name
}

// DispatchError is returned when the chain included the extrinsic but rejected its dispatch.
type DispatchError struct {
	Event      string // event that reported the failure
	Descriptor string // the chain's own error description
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch failed (%s): %s", e.Event, e.Descriptor)
}

// EventRule says which emitted event carries a value written by the chain.
type EventRule struct {
	Name   string           // event name, e.g. "Nfts.Created"
	Field  string           // field holding the value
	Match  func(Event) bool // optional extra filter
	Unique bool             // reject several matching events instead of taking the first
}

// CollectionCreatedRule picks the Nfts.Created event whose owner is admin.
func CollectionCreatedRule(admin []byte) EventRule {
	return EventRule{
		Name:  "Nfts.Created",
		Field: "collection",
		Match: func(ev Event) bool {
			owner, ok := AccountBytes(ev.Fields["owner"])
			return ok && bytes.Equal(owner, admin)
		},
		Unique: true,
	}
}

// Find returns the events matching the rule in emission order.
func (r EventRule) Find(events []Event) []Event {
	var out []Event
	for _, ev := range events {
		if ev.Name != r.Name {
			continue
		}
		if r.Match != nil && !r.Match(ev) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// ExtractUint32 applies rule to events and reads its numeric field.
func ExtractUint32(events []Event, rule EventRule) (uint32, error) {
	found := rule.Find(events)
	if len(found) == 0 {
		return 0, errors.Wrapf(ErrEventNotFound, "%s", rule.Name)
	}
	if rule.Unique && len(found) > 1 {
		return 0, errors.Wrapf(ErrAmbiguousEvent, "%s emitted %d times", rule.Name, len(found))
	}
	v, ok := found[0].Fields[rule.Field]
	if !ok {
		return 0, errors.Errorf("event %s has no field %q", rule.Name, rule.Field)
	}
	n, ok := Uint32(v)
	if !ok {
		return 0, errors.Errorf("event %s field %q is not a u32: %T", rule.Name, rule.Field, v)
	}
	return n, nil
}

// CheckDispatch turns a failure event of the extrinsic into a *DispatchError.
func CheckDispatch(events []Event) error {
	for _, ev := range events {
		switch ev.Name {
		case "System.ExtrinsicFailed":
			return &DispatchError{Event: ev.Name, Descriptor: Describe(ev.Fields["dispatch_error"])}
		case "Utility.BatchInterrupted":
			return &DispatchError{
				Event:      ev.Name,
				Descriptor: fmt.Sprintf("call %s: %s", Describe(ev.Fields["index"]), Describe(ev.Fields["error"])),
			}
		}
	}
	return nil
}

func fromDecoded(name string, fields registry.DecodedFields) Event {
	ev := Event{Name: name, Fields: make(map[string]any, len(fields))}
	for _, f := range fields {
		if f == nil {
			continue
		}
		ev.Fields[f.Name] = f.Value
	}
	return ev
}

// Uint32 converts the integer representations a decoder may produce.
func Uint32(v any) (uint32, bool) {
	switch x := v.(type) {
	case types.UCompact:
		b := (*big.Int)(&x)
		if !b.IsUint64() || b.Uint64() > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(b.Uint64()), true
	case types.U128:
		return Uint32(x.Int)
	case *big.Int:
		if x == nil || !x.IsUint64() || x.Uint64() > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(x.Uint64()), true
	case registry.DecodedFields:
		if len(x) == 1 && x[0] != nil {
			return Uint32(x[0].Value)
		}
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uint:
		u := rv.Uint()
		if u > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(u), true
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64, reflect.Int:
		i := rv.Int()
		if i < 0 || i > 0xFFFFFFFF {
			return 0, false
		}
		return uint32(i), true
	}
	return 0, false
}

// AccountBytes extracts a 32-byte account id from a decoded field value.
func AccountBytes(v any) ([]byte, bool) {
	b := byteSeq(v)
	if len(b) != 32 {
		return nil, false
	}
	return b, true
}

func byteSeq(v any) []byte {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		return x
	case registry.DecodedFields:
		if len(x) == 1 && x[0] != nil {
			return byteSeq(x[0].Value)
		}
		var out []byte
		for _, f := range x {
			if f == nil {
				return nil
			}
			u, ok := Uint32(f.Value)
			if !ok || u > 0xFF {
				return nil
			}
			out = append(out, byte(u))
		}
		return out
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Array && rv.Kind() != reflect.Slice {
		return nil
	}
	out := make([]byte, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		u, ok := Uint32(rv.Index(i).Interface())
		if !ok || u > 0xFF {
			return nil
		}
		out = append(out, byte(u))
	}
	return out
}

// Describe renders a decoded value (typically a DispatchError) for humans.
func Describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "unknown"
	case registry.DecodedFields:
		parts := make([]string, 0, len(x))
		for _, f := range x {
			if f == nil {
				continue
			}
			if f.Name == "" {
				parts = append(parts, Describe(f.Value))
				continue
			}
			parts = append(parts, f.Name+": "+Describe(f.Value))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+Describe(x[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprintf("%v", v)
}
