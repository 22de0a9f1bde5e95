// meta/meta.go
package meta

// ROUNDS defines the default number of rounds the engine plays.
const ROUNDS = 1000

// MOVE_TIMEOUT_MS is how long an actor may think before its turn becomes a pass.
const MOVE_TIMEOUT_MS = 100

// INIT_TIMEOUT_MS bounds the actor handshake.
const INIT_TIMEOUT_MS = 2000

// PROTOCOL_VERSION is stamped on every message sent to actors.
const PROTOCOL_VERSION = 1
