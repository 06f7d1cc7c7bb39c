package appfs

import "embed"

// FS holds the database migrations, the email templates and the static assets.
//go:embed migrations/*.sql templates/email/* assets/*
var FS embed.FS
