// Package cache stores rendered artifacts between runs.
//
// Three backends implement [Cache]: [FileCache] (one JSON file per entry
// under the user cache directory), [RedisCache] (plain Redis strings under a
// namespace prefix) and [NullCache]. [Open] picks one by name.
//
// [Scoped] and [Observed] wrap any backend to prefix keys and to report
// hits and misses to the observability hooks.
package cache
