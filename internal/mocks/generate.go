package mocks

//go:generate mockery --name EventStore --srcpkg github.com/aevon-lab/ebs/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Executor --srcpkg github.com/aevon-lab/ebs/internal/core/query --output ./query --outpkg querymocks --with-expecter
