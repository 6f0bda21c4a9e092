package usecase

import (
	"fmt"
	"strings"

	domainErrors "github.com/platefront/checkout/internal/domain/errors"
	"github.com/platefront/checkout/internal/domain/model"
)

// ValidateAddress checks that every required delivery field is present.
func ValidateAddress(addr model.Address) error {
	if missing := addr.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", domainErrors.ErrInvalidAddress, strings.Join(missing, ", "))
	}
	return nil
}
