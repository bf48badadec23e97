package vx

// The per-width files are stamped out by vxgen from the op table; the
// portable cores they delegate to are hand-written in lanes.go,
// mathlanes.go, half.go and color.go.

//go:generate go run ../cmd/vxgen -out .
