// Package jwt issues and verifies compact JSON Web Tokens signed with HMAC-SHA256.
//
// A Service holds one secret plus a mutable header and payload. Setters build
// up the payload, Encode signs it, and Decode, ValidateSignature and
// ValidateClaims check tokens received from elsewhere using only the secret.
//
// # Features
//
// - HS256 only; the alg header is never used to choose a verifier
// - Constant-time signature comparison
// - iat, nbf and exp validation against a single clock reading
// - Insertion-ordered header and payload serialization
// - Tagged errors with structured context (errors.Is / errors.As)
// - Accepts the full "Bearer <token>" Authorization header value
//
// # Usage
//
// Creating a secret and a service:
//
//	secret, err := jwt.CreateSecret(32) // 64 hex characters
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	service, err := jwt.NewFromString(secret)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Issuing a token:
//
//	token, err := service.
//		Sub("user123").
//		Iss("myapp").
//		Jti(jwt.NewID()).
//		IssuedNow().
//		ExpiresIn(time.Hour).
//		Encode(jwt.F("role", "admin"))
//
// Encode merges its arguments into the stored payload, so they are also part of
// every later token produced by the same service.
//
// Verifying a token:
//
//	tok, err := service.Decode(r.Header.Get("Authorization"), true)
//	if err != nil {
//		switch {
//		case errors.Is(err, jwt.ErrInvalidExp):
//			log.Println("token has expired")
//		case errors.Is(err, jwt.ErrInvalidSignature):
//			log.Println("token signature is invalid")
//		default:
//			log.Printf("token rejected: %v", err)
//		}
//		return
//	}
//
//	log.Printf("subject: %s", tok.Payload.Subject())
//
// Decode(token, false) skips the signature and time checks and returns
// unverified, attacker-controlled content. Use it only for tokens that were
// already authenticated some other way.
//
// # Concurrency
//
// Setters and Encode mutate the service without locking. Verification methods
// only read the secret and options, so a fully built service can be shared.
//
// # Error Handling
//
// Every rejection is a *Error with a Reason:
//   - ErrInvalidStructure: not three segments, oversized, or undecodable segment
//   - ErrInvalidSignature: signature does not match the secret
//   - ErrInvalidIat: issued in the future
//   - ErrInvalidNbf: not valid yet
//   - ErrInvalidExp: expired
//   - ErrRandomnessUnavailable: CreateSecret could not read random bytes
//
// Time claims that are present but not integer Unix timestamps are skipped,
// unless WithStrictTimeClaims is set.
package jwt
