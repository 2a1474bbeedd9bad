package main

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRun_BuildsServerOptions(t *testing.T) {
	isTest = true
	defer func() { isTest = false }()

	var capturedOpts serverOptions

	// intercept the server start
	startServer = func(opts serverOptions) {
		capturedOpts = opts
	}
	defer func() { startServer = serve }()

	main()
	run()

	assert.NotEmpty(t, capturedOpts.port)
	assert.NotNil(t, capturedOpts.registry)

	// handlers must be safe to execute in test mode
	capturedOpts.jobsHandler()
	capturedOpts.migrationHandler()
	capturedOpts.preHandler(gin.New())

	assert.Equal(t, 0, capturedOpts.registry.Count())
}
