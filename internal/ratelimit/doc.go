// Package ratelimit enforces a minimum interval between calls to each
// external lookup source.
//
// One Limiter is shared by every client in the process; the per-source last
// call timestamps are the only state. Items are processed sequentially, so a
// mutex around the map is all the coordination required.
package ratelimit
