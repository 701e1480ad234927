// Package sounds contains the bundled xylophone samples, one WAV file per
// note, named after the note.
package sounds

import "embed"

//go:embed *.wav
var FS embed.FS
