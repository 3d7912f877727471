package handlers

import (
	"github.com/sirupsen/logrus"

	"mlplayground/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}
