package mocks

//go:generate mockery --name BlogStore --srcpkg github.com/bloglist-lab/bloglist/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name UserStore --srcpkg github.com/bloglist-lab/bloglist/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
