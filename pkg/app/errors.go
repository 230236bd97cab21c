package app

import "github.com/shuldan/pubsub/pkg/errors"

var (
	newAppCode       = errors.WithPrefix("APP")
	newContainerCode = errors.WithPrefix("APP_CONTAINER")
)

var (
	ErrModuleRegister = newAppCode().New("failed to register module {{.module}}")
	ErrModuleStart    = newAppCode().New("failed to start module {{.module}}")
	ErrAppRun         = newAppCode().New("application run failed: {{.reason}}")
	ErrAppStop        = newAppCode().New("application stop failed: {{.reason}}")
	ErrModuleStop     = newAppCode().New("failed to stop module {{.module}}")

	ErrCircularDep       = newContainerCode().New("circular dependency detected for type {{.type}}")
	ErrValueNotFound     = newContainerCode().New("value not found for type {{.type}}")
	ErrDuplicateInstance = newContainerCode().New("instance already exists for type {{.type}}")
	ErrDuplicateFactory  = newContainerCode().New("factory already registered for type {{.type}}")
)
