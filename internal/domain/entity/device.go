package entity

// Device is a push target registered on an account.
type Device struct {
	AccountID string `json:"account_id"` // The account the device is registered on.
	DeviceID  string `json:"device_id"`  // Key of the registration in the account's devices map.
	Token     string `json:"token"`      // FCM registration token.
	Name      string `json:"name"`       // Human readable device name.
}

// Caller is the authenticated end user behind a callable request.
type Caller struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}
