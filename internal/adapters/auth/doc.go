// Package auth implements the password hashing and access token ports with
// bcrypt and HS256-signed JWTs.
package auth
