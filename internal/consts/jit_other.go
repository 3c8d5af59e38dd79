//go:build !amd64 && !arm64

package consts

const HasJIT = false
