package jwt

import "time"

// Option configures a Service.
type Option func(*Service)

// WithClock sets the time source used for claim validation and the
// relative claim setters. Default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLeeway tolerates clock skew of d when checking iat, nbf and exp.
func WithLeeway(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.rules.leeway = d
		}
	}
}

// WithStrictTimeClaims rejects iat, nbf or exp values that are present but
// not integer Unix timestamps instead of skipping them.
func WithStrictTimeClaims() Option {
	return func(s *Service) {
		s.rules.strict = true
	}
}

// WithMaxTokenSize rejects tokens longer than n bytes before any parsing.
// Zero disables the limit.
func WithMaxTokenSize(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxTokenSize = n
		}
	}
}

// WithHeader adds default header entries on top of typ and alg.
func WithHeader(fields ...Field) Option {
	return func(s *Service) {
		s.header.Set(fields...)
	}
}
