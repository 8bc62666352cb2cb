package notebox

import (
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/gorewood/zetta/internal/config"
	"github.com/gorewood/zetta/internal/output"
)

// TimestampLayout formats identifiers to second resolution (YYYYMMDDHHMMSS).
// Two notes created within the same second collide; Store.Create reports
// the collision as ErrAlreadyExists instead of overwriting.
const TimestampLayout = "20060102150405"

// IDGenerator produces a fresh note identifier.
type IDGenerator func() string

// TimestampIDs returns the default generator, formatting now() with TimestampLayout.
func TimestampIDs(now func() time.Time) IDGenerator {
	if now == nil {
		now = time.Now
	}
	return func() string {
		return now().Format(TimestampLayout)
	}
}

// UUIDIDs returns a generator of random version 4 UUIDs.
func UUIDIDs() IDGenerator {
	return uuid.NewString
}

// NewIDGenerator returns the generator for a configured policy name.
func NewIDGenerator(policy string, now func() time.Time) (IDGenerator, error) {
	switch policy {
	case "", config.IDPolicyTimestamp:
		return TimestampIDs(now), nil
	case config.IDPolicyUUID:
		return UUIDIDs(), nil
	default:
		return nil, fmt.Errorf("unknown id policy %q", policy)
	}
}

// ValidateID rejects identifiers that cannot name a note directory directly
// under the box root.
func ValidateID(id string) error {
	err := validation.Validate(id,
		validation.Required.Error("must not be empty"),
		validation.By(singlePathElement),
	)
	if err != nil {
		return output.NewUserErrorWithCause(
			fmt.Sprintf("invalid note id %q: %s", id, err.Error()),
			errors.Join(ErrInvalidID, err))
	}
	return nil
}

func singlePathElement(value any) error {
	id, _ := value.(string)
	if id == "" {
		return nil
	}
	if id == "." || id == ".." {
		return errors.New("must not be a relative directory reference")
	}
	if strings.ContainsAny(id, `/\`) {
		return errors.New("must not contain path separators")
	}
	if strings.ContainsRune(id, 0) {
		return errors.New("must not contain NUL")
	}
	if strings.ContainsAny(id, "*?[:") {
		return errors.New("must not contain any of * ? [ :")
	}
	return nil
}
