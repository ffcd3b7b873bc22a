package apperror

import "errors"

type translationKey struct {
	entity Entity
	reason Reason
}

// translations maps domain codes to the messages clients see. Codes that are
// missing here are programming errors (e.g. ADDED_THREAD checks) and stay 500s.
var translations = map[translationKey]string{
	{EntityRegisterUser, ReasonMissingProperty}:        "tidak dapat membuat user baru karena properti yang dibutuhkan tidak ada",
	{EntityRegisterUser, ReasonInvalidType}:            "tidak dapat membuat user baru karena tipe data tidak sesuai",
	{EntityRegisterUser, ReasonUsernameLimitChar}:      "tidak dapat membuat user baru karena karakter username melebihi batas limit",
	{EntityRegisterUser, ReasonUsernameRestrictedChar}: "tidak dapat membuat user baru karena username mengandung karakter terlarang",

	{EntityUserLogin, ReasonMissingProperty}: "harus mengirimkan username dan password",
	{EntityUserLogin, ReasonInvalidType}:     "username dan password harus string",

	{EntityRefreshAuthentication, ReasonMissingRefreshToken}:     "harus mengirimkan token refresh",
	{EntityRefreshAuthentication, ReasonRefreshTokenInvalidType}: "refresh token harus string",
	{EntityDeleteAuthentication, ReasonMissingRefreshToken}:      "harus mengirimkan token refresh",
	{EntityDeleteAuthentication, ReasonRefreshTokenInvalidType}:  "refresh token harus string",

	{EntityNewThread, ReasonMissingProperty}: "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
	{EntityNewThread, ReasonInvalidType}:     "tidak dapat membuat thread baru karena tipe data tidak sesuai",
	{EntityNewThread, ReasonTitleLimitChar}:  "tidak dapat membuat thread baru karena karakter title melebihi batas limit",

	{EntityNewComment, ReasonMissingProperty}: "tidak dapat membuat comment baru karena properti yang dibutuhkan tidak ada",
	{EntityNewComment, ReasonInvalidType}:     "tidak dapat membuat comment baru karena tipe data tidak sesuai",

	{EntityNewReply, ReasonMissingProperty}: "tidak dapat membuat reply baru karena properti yang dibutuhkan tidak ada",
	{EntityNewReply, ReasonInvalidType}:     "tidak dapat membuat reply baru karena tipe data tidak sesuai",
}

// Translate converts a known DomainError anywhere in err's chain into an
// Invariant AppError carrying the localized message. Any other error,
// including unknown domain codes, is returned unchanged.
func Translate(err error) error {
	var de *DomainError
	if !errors.As(err, &de) {
		return err
	}
	msg, ok := translations[translationKey{de.Entity, de.Reason}]
	if !ok {
		return err
	}
	return &AppError{
		Err:     ErrInvariant,
		Message: msg,
	}
}
