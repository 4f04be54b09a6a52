package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile dumps the registered metrics in the text exposition format,
// for the node exporter textfile collector. The file is written atomically.
func WriteTextfile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, prometheus.DefaultGatherer); err != nil {
		return errors.Wrapf(err, "unable to write metrics textfile %s", filename)
	}
	return nil
}
