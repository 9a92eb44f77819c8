package store

// Encoding tags how a resource's payload is stored in the durable tier.
type Encoding int

const (
	// JSON resources hold an encoded JSON document.
	JSON Encoding = iota
	// RawText resources hold plain text; their key carries the file
	// extension (e.g. the CSV backup).
	RawText
)

// Resource identifies one persisted value. The encoding travels with the
// key so no tier has to sniff file extensions to pick a format.
type Resource struct {
	Key      string
	Encoding Encoding
}

// Filename returns the durable-tier file name for the resource. JSON
// resources gain a .json extension; raw resources keep the extension
// embedded in their key.
func (r Resource) Filename() string {
	if r.Encoding == RawText {
		return r.Key
	}
	return r.Key + ".json"
}

// AccountsResource is the account registry.
func AccountsResource() Resource {
	return Resource{Key: "accounts"}
}

// LogsResource is the per-account log book.
func LogsResource(accountID string) Resource {
	return Resource{Key: "logs-" + accountID}
}

// SettingsResource is the per-account settings document.
func SettingsResource(accountID string) Resource {
	return Resource{Key: "settings-" + accountID}
}

// BackupResource is the per-account human-readable CSV backup.
func BackupResource(accountID string) Resource {
	return Resource{Key: "backup-" + accountID + ".csv", Encoding: RawText}
}
