package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/lock ../schema
