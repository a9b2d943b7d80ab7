package runtime

import (
	"io"
	"io/ioutil"
	"log"

	"github.com/prometheus/client_golang/prometheus"
)

//Conf configures the runtime
type Conf struct {
	//Logs will be written to the writer
	LogWriter io.Writer

	//Metrics are registered here, nil disables registration
	Metrics prometheus.Registerer

	//Genesis state that is applied when the runtime is created, may be nil
	Genesis *Genesis
}

//DefaultConf returns sensible defaults
func DefaultConf() *Conf {
	return &Conf{
		LogWriter: ioutil.Discard,
	}
}

//Logger returns a logger that writes to the configured writer
func (c *Conf) Logger() *log.Logger {
	w := c.LogWriter
	if w == nil {
		w = ioutil.Discard
	}

	return log.New(w, "", 0)
}
