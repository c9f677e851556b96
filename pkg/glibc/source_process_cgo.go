//go:build linux && cgo

package glibc

/*
#cgo LDFLAGS: -ldl
#include <dlfcn.h>
#include <stddef.h>

typedef const char* (*libc_version_func)(void);

static const char* lookup_libc_version(void)
{
	void* self = dlopen(NULL, RTLD_NOW);
	if (self == NULL) {
		return NULL;
	}
	libc_version_func fn = (libc_version_func) dlsym(self, "gnu_get_libc_version");
	dlclose(self);
	if (fn == NULL) {
		return NULL;
	}
	return fn();
}
*/
import "C"

type processSource struct{}

func (processSource) LibcVersion() (string, bool) {
	// The symbol is only present if glibc is loaded into this process, musl
	// and friends do not provide it.
	v := C.lookup_libc_version()
	if v == nil {
		return "", false
	}
	return C.GoString(v), true
}
