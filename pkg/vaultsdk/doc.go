/*
Package vaultsdk provides a client SDK for the keyvault HTTP API.

# Overview

The package holds the request and response types shared by the server and
its clients, the APIError type handlers use to write error bodies, and a
Client wrapping every /api endpoint.

	client := vaultsdk.NewClient("http://localhost:8080")

	reg, err := client.Register(ctx, vaultsdk.RegisterRequest{
		Username: "alice",
		Password: "correct horse",
	})

	login, err := client.Login(ctx, vaultsdk.LoginRequest{
		Username: "alice",
		Password: "correct horse",
	})
	if login.TwoFactorRequired() {
		// ask for a code and log in again with OTPCode set
	}

# Errors

Any non-2xx response is returned as *APIError carrying the HTTP status, the
machine readable code and a description:

	var apiErr *vaultsdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
		// bad credentials
	}

# Sensitive fields

Credential passwords, notes and access key values are only present when
requested with includeSensitive. A value that can no longer be decrypted on
the server is omitted rather than failing the request.
*/
package vaultsdk
