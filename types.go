package globus

import "strings"

// Document is a free-form JSON object, used where the remote schema is
// passed through untouched (activation requirements, partial updates).
type Document map[string]any

// Response codes returned by the Transfer API that callers commonly branch on.
const (
	CodeAccepted           = "Accepted"
	CodeCreated            = "Created"
	CodeUpdated            = "Updated"
	CodeDeleted            = "Deleted"
	CodeDeactivated        = "Deactivated"
	CodeNotActivated       = "NotActivated"
	CodeAccessRuleNotFound = "AccessRuleNotFound"
	CodeBadRequest         = "ClientError.BadRequest"
	CodeNotFound           = "ClientError.NotFound"
	CodeAutoActivated      = "AutoActivated"

	// CodeActivatedPrefix starts codes like "Activated.MyProxyCredential".
	CodeActivatedPrefix = "Activated."
)

// Permission is an access rule permission string.
type Permission string

const (
	PermissionRead      Permission = "r"
	PermissionReadWrite Permission = "rw"
)

// PrincipalType identifies what an access rule principal refers to.
type PrincipalType string

const (
	PrincipalIdentity              PrincipalType = "identity"
	PrincipalGroup                 PrincipalType = "group"
	PrincipalAllAuthenticatedUsers PrincipalType = "all_authenticated_users"
	PrincipalAnonymous             PrincipalType = "anonymous"
)

func (p PrincipalType) needsPrincipal() bool {
	return p == PrincipalIdentity || p == PrincipalGroup
}

// SyncLevel controls which files a transfer skips when they already exist at the destination.
type SyncLevel int

const (
	// SyncExists copies files that do not exist at the destination.
	SyncExists SyncLevel = iota
	// SyncSize also copies files whose size differs.
	SyncSize
	// SyncMTime also copies files whose source modification time is newer.
	SyncMTime
	// SyncChecksum also copies files whose checksums differ.
	SyncChecksum
)

func (s SyncLevel) valid() bool {
	return s >= SyncExists && s <= SyncChecksum
}

func hasPrefix(code, prefix string) bool {
	return prefix != "" && strings.HasPrefix(code, prefix)
}
