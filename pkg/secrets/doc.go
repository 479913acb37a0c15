// Package secrets derives per-tenant HMAC signing secrets from a single
// application secret using HKDF-SHA256.
//
// Every tenant gets its own signing key without storing one secret per
// tenant: the derived key is a pure function of the application secret and
// the tenant identifier, so issuers and verifiers that share the application
// secret agree on the key.
//
// # Usage
//
//	key, err := secrets.Derive([]byte(appSecret), "tenant-42")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	service, err := jwt.New(key)
//
// DeriveHex returns the same key hex-encoded, in the format produced by
// jwt.CreateSecret, for storing in configuration or passing to CLI tools.
//
// # Error Handling
//
//   - ErrEmptyAppKey: the application secret is empty
//   - ErrEmptyTenant: the tenant identifier is empty
//   - ErrKeyDerivationFailed: HKDF could not produce the key
package secrets
