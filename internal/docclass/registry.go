package docclass

import (
	"fmt"
	"regexp"

	"docscan/internal/domain"
)

// Shared patterns.
var (
	// CNICPattern matches a 13-digit CNIC, dashed, spaced or contiguous.
	CNICPattern = regexp.MustCompile(`\b\d{5}[-\s]?\d{7}[-\s]?\d\b`)

	contiguousCNICPattern = regexp.MustCompile(`\b\d{13}\b`)
)

var registry = map[domain.DocumentClass]*Descriptor{
	domain.ClassCNIC:     cnic,
	domain.ClassDomicile: domicile,
	domain.ClassPHC:      phc,
	domain.ClassPMDC:     pmdc,
}

// Lookup returns the descriptor for a class.
func Lookup(class domain.DocumentClass) (*Descriptor, error) {
	d, ok := registry[class]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDocumentClass, class)
	}
	return d, nil
}

// MustLookup is Lookup for classes known at compile time.
func MustLookup(class domain.DocumentClass) *Descriptor {
	d, err := Lookup(class)
	if err != nil {
		panic(err)
	}
	return d
}

// All returns every descriptor in registry order.
func All() []*Descriptor {
	out := make([]*Descriptor, 0, len(domain.DocumentClasses))
	for _, c := range domain.DocumentClasses {
		out = append(out, registry[c])
	}
	return out
}
