// Package middleware provides net/http middleware that authenticates requests
// with HS256 tokens issued by pkg/jwt.
//
// The middleware extracts a token from the request, verifies its signature
// and time claims, optionally checks iss and aud, and stores the decoded
// token in the request context.
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
//		claims, _ := middleware.GetClaims(r.Context())
//		fmt.Fprintln(w, claims.Subject())
//	})
//
//	http.ListenAndServe(":8080", middleware.JWT(os.Getenv("JWT_SECRET"))(mux))
//
// # Token Sources
//
// JWTFromAuthHeader is the default. JWTFromAuthHeaderWithScheme, JWTFromHeader,
// JWTFromQuery and JWTFromCookie read other locations, and JWTFromMultiple
// tries several in order.
//
// # Errors
//
// Rejected requests get a 401 JSON body:
//
//	{"code":"unauthorized","message":"jwt: invalid exp claim: ...","details":{"reason":"invalid_exp"}}
//
// Provide JWTConfig.ErrorHandler to change the response. Each rejection is
// logged at warn level through JWTConfig.Logger with the rejection reason.
package middleware
