package jsonapi

const (
	ErrMsgMissingID         = "Model id is missing or empty."
	ErrMsgNilModel          = "Model must not be nil."
	ErrMsgEmptyResourceType = "Resource type must not be empty."
)
