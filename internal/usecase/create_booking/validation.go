package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotTimeID <= 0 {
		return fmt.Errorf("%w: slotTimeID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Telephone != nil && len(*req.Telephone) > domain.MaxTelephoneLength {
		return fmt.Errorf("%w: telephone exceeds %d characters", ErrInvalidInput, domain.MaxTelephoneLength)
	}

	return nil
}
