package safe

import (
	"io"
	"log/slog"

	"github.com/stardust-cli/stardust/pkg/utils/logging"
)

// maxDrainBytes bounds how much of a discarded body is read to allow connection reuse.
const maxDrainBytes = 64 * 1024

// Close safely closes the resource and logs error if any
func Close(closer io.Closer) {
	if closer != nil {
		if err := closer.Close(); err != nil {
			if err == io.EOF {
				return
			}
			logging.Default().Warn("Fail to close resource", slog.Any("error", err))
		}
	}
}

// DrainAndClose discards the rest of a response body and closes it.
func DrainAndClose(body io.ReadCloser) {
	if body == nil {
		return
	}
	if _, err := io.Copy(io.Discard, io.LimitReader(body, maxDrainBytes)); err != nil {
		logging.Default().Debug("Fail to drain response body", slog.Any("error", err))
	}
	Close(body)
}
