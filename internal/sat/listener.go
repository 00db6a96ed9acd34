package sat

import log "github.com/sirupsen/logrus"

// LoggingListener logs every SAT solver invocation at info level.
type LoggingListener struct{}

func (LoggingListener) SolvingStart(nVars, nClauses int) {
	log.Infof("launching SAT solver on an instance with %d variables and %d clauses", nVars, nClauses)
}

func (LoggingListener) SolvingEnd(result SolvingResult) {
	log.Infof("SAT solver ended with result %s", result.Status)
}
