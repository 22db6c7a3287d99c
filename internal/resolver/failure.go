package resolver

import (
	"cartscan/pkg/serrors"
	"encoding/json"
	"errors"
)

// Failure is the structured failure object of the one-shot CLI. It marshals
// to {"ok": false, "message": ...} merged with the diagnostic details the
// failing pipeline stage attached (search term, candidate payload, product
// id).
type Failure struct {
	Message string
	Details map[string]any
}

// NewFailure builds a Failure from a pipeline error, lifting the diagnostic
// details off the nearest semantic error in the chain.
func NewFailure(err error) Failure {
	f := Failure{Message: err.Error()}

	var serr *serrors.Error
	if errors.As(err, &serr) {
		f.Details = serr.Details()
	}

	return f
}

// MarshalJSON flattens the details into the failure object. The ok and
// message keys always win over a detail of the same name.
func (f Failure) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(f.Details)+2)
	for k, v := range f.Details {
		obj[k] = v
	}
	obj["ok"] = false
	obj["message"] = f.Message

	return json.Marshal(obj)
}
