// Package hashid derives stable, deterministic vertex identifiers for the
// dependency graph from their natural keys.
//
// Every function here returns a digest of xxhash.Sum64 over the key fields
// joined with a NUL separator (so ("ab","c") and ("a","bc") never collide),
// formatted as 16 lowercase hex digits with a one-letter kind prefix. The
// prefix keeps ids self-describing in diagnostics and guarantees ids never
// collide across kinds even on a 64-bit digest collision.
//
// xxhash.Sum64 (not hash/maphash) is used deliberately: maphash is seeded
// per-process, so the same key would hash to a different value on every
// run — unacceptable here, since mapping/entity/file ids cross run
// boundaries in diagnostic output and downstream deployments pin on them.
package hashid

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

const sep = 0

// File returns the stable id for a FileRETW vertex given its filesystem
// path. Re-ingesting the same path always yields the same id.
func File(path string) string {
	return digest('f', path)
}

// Entity returns the stable id for an Entity vertex given its owning
// model code and entity code. The same (codeModel, code) pair always
// yields the same id, which is the mechanism by which an entity shared
// across files is unified into a single vertex.
func Entity(codeModel, code string) string {
	return digest('e', codeModel, code)
}

// Mapping returns the stable id for a Mapping vertex given the id of its
// owning file and its mapping code. Mapping identity is file-local: two
// files may reuse the same mapping code without colliding.
func Mapping(fileID, mappingCode string) string {
	return digest('m', fileID, mappingCode)
}

// digest joins parts with a NUL separator, hashes the result with
// xxhash.Sum64, and formats it as "<prefix><16 lowercase hex digits>".
func digest(prefix byte, parts ...string) string {
	buf := make([]byte, 0, 64)
	for i, p := range parts {
		if i > 0 {
			buf = append(buf, sep)
		}
		buf = append(buf, p...)
	}
	sum := xxhash.Sum64(buf)
	return fmt.Sprintf("%c%016x", prefix, sum)
}
