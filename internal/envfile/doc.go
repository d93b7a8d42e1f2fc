// Package envfile renders resolved settings into the two .env files of a
// freshly cloned project: backend/app/.env and frontend/.env. Lines are plain
// KEY=value pairs in a fixed order, with no quoting or escaping.
package envfile
