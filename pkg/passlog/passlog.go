package passlog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gitee.com/dromara/carbon/v2"
	"github.com/spf13/afero"
)

// Mode identifies which generator produced a password and therefore which
// log file it is appended to.
type Mode string

// Log modes, one per generator.
const (
	ModeMemorable Mode = "Memorable"
	ModeRandom    Mode = "Random"
)

// FileName is the log file created inside each mode directory.
const FileName = "Generated_Passwords.txt"

// timestampLayout renders "Mon 2006-01-02 15:04:05".
const timestampLayout = "Mon 2006-01-02 15:04:05"

// Recorder appends generated passwords with timestamps to mode-specific
// files. Files are append-only from this package's perspective and are never
// read back.
type Recorder struct {
	fs   afero.Fs
	dirs map[Mode]string
	now  func() time.Time
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithFs sets the filesystem to write to. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(r *Recorder) {
		if fs != nil {
			r.fs = fs
		}
	}
}

// WithDir overrides the directory a mode logs into.
func WithDir(mode Mode, dir string) Option {
	return func(r *Recorder) {
		if dir != "" {
			r.dirs[mode] = dir
		}
	}
}

// WithClock overrides the time source, letting tests pin the timestamp.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) {
		if now != nil {
			r.now = now
		}
	}
}

// New creates a Recorder logging into "Memorable" and "Random" directories
// under the working directory.
func New(opts ...Option) *Recorder {
	r := &Recorder{
		fs: afero.NewOsFs(),
		dirs: map[Mode]string{
			ModeMemorable: string(ModeMemorable),
			ModeRandom:    string(ModeRandom),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Append writes one "<timestamp> | <password>" line to the mode's log file,
// creating the directory and file as needed.
func (r *Recorder) Append(mode Mode, password string) error {
	dir, ok := r.dirs[mode]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	if err := r.fs.MkdirAll(dir, 0o755); err != nil {
		return errors.Join(ErrAppendFailed, err)
	}

	f, err := r.fs.OpenFile(filepath.Join(dir, FileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Join(ErrAppendFailed, err)
	}
	defer func() { _ = f.Close() }()

	stamp := carbon.CreateFromStdTime(r.now()).Layout(timestampLayout)
	if _, err := fmt.Fprintf(f, "%s | %s\n", stamp, password); err != nil {
		return errors.Join(ErrAppendFailed, err)
	}

	return nil
}
