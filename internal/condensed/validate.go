package condensed

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator"
)

var (
	// ErrUnknownSite marks a site index that does not resolve in the site table.
	ErrUnknownSite = errors.New("unknown site index")
	// ErrUnknownComponent marks a component index absent from the component table.
	ErrUnknownComponent = errors.New("unknown component index")
)

var structValidator = validator.New()

// Validate checks the document once, right after decoding. It verifies that
// required fields are present and that every site/component index referenced
// anywhere resolves in its table. Downstream accessors rely on this and do
// not re-validate.
func (s *Structure) Validate() error {
	if err := structValidator.Struct(s); err != nil {
		return fmt.Errorf("condensed structure: %w", err)
	}

	for index, site := range s.Sites {
		for _, nn := range site.NN {
			if _, ok := s.Sites[nn]; !ok {
				return fmt.Errorf("site %d neighbor list: %w %d", index, ErrUnknownSite, nn)
			}
		}
	}

	for from, toDistances := range s.Distances {
		if _, ok := s.Sites[from]; !ok {
			return fmt.Errorf("distance table: %w %d", ErrUnknownSite, from)
		}
		for to := range toDistances {
			if _, ok := s.Sites[to]; !ok {
				return fmt.Errorf("distances from site %d: %w %d", from, ErrUnknownSite, to)
			}
		}
	}

	for from, toAngles := range s.Angles {
		if _, ok := s.Sites[from]; !ok {
			return fmt.Errorf("angle table: %w %d", ErrUnknownSite, from)
		}
		for to := range toAngles {
			if _, ok := s.Sites[to]; !ok {
				return fmt.Errorf("angles from site %d: %w %d", from, ErrUnknownSite, to)
			}
		}
	}

	for index, component := range s.Components {
		if len(component.Sites) == 0 {
			return fmt.Errorf("component %d has no sites", index)
		}
		for _, siteIndex := range component.Sites {
			if _, ok := s.Sites[siteIndex]; !ok {
				return fmt.Errorf("component %d site list: %w %d", index, ErrUnknownSite, siteIndex)
			}
		}
	}

	for _, index := range s.ComponentMakeup {
		if _, ok := s.Components[index]; !ok {
			return fmt.Errorf("component makeup: %w %d", ErrUnknownComponent, index)
		}
	}

	return nil
}
