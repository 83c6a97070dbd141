package model

import (
	"github.com/google/go-github/v53/github"
)

// Repository is a repository record as returned by the GitHub REST API. It
// is treated as an opaque value; a successful read means the repository
// exists.
type Repository = github.Repository

// User is the authenticated user's profile returned by GET /user.
type User = github.User
