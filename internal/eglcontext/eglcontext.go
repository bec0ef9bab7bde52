// Package eglcontext creates an offscreen OpenGL ES 2 context through EGL so
// the shader daemon can compile programs without a window.
package eglcontext

/*
#cgo LDFLAGS: -lEGL
#include <stdlib.h>
#include <EGL/egl.h>

static EGLDisplay default_display(void) {
	return eglGetDisplay(EGL_DEFAULT_DISPLAY);
}

static EGLSurface no_surface(void) {
	return EGL_NO_SURFACE;
}

static EGLContext no_context(void) {
	return EGL_NO_CONTEXT;
}

static void *proc_address(const char *name) {
	return (void *)eglGetProcAddress(name);
}
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/charmbracelet/log"
)

const (
	clientAPI     = C.EGL_OPENGL_ES_API
	clientVersion = 2

	attrNone           = C.EGL_NONE
	attrSurfaceType    = C.EGL_SURFACE_TYPE
	attrRenderableType = C.EGL_RENDERABLE_TYPE
	attrClientVersion  = C.EGL_CONTEXT_CLIENT_VERSION
	attrRedSize        = C.EGL_RED_SIZE
	attrGreenSize      = C.EGL_GREEN_SIZE
	attrBlueSize       = C.EGL_BLUE_SIZE
	attrWidth          = C.EGL_WIDTH
	attrHeight         = C.EGL_HEIGHT

	pbufferBit = C.EGL_PBUFFER_BIT
	es2Bit     = C.EGL_OPENGL_ES2_BIT
)

func configAttribs() []int32 {
	return []int32{
		attrSurfaceType, pbufferBit,
		attrRedSize, 8,
		attrGreenSize, 8,
		attrBlueSize, 8,
		attrRenderableType, es2Bit,
		attrNone,
	}
}

func contextAttribs() []int32 {
	return []int32{
		attrClientVersion, clientVersion,
		attrNone,
	}
}

func pbufferAttribs() []int32 {
	return []int32{
		attrWidth, 1,
		attrHeight, 1,
		attrNone,
	}
}

func eglInts(attribs []int32) []C.EGLint {
	out := make([]C.EGLint, len(attribs))
	for i, a := range attribs {
		out[i] = C.EGLint(a)
	}
	return out
}

// Context is a GLES2 context bound to a 1x1 pbuffer. It is current only on
// the OS thread that called Open, so callers lock that thread first.
type Context struct {
	display C.EGLDisplay
	context C.EGLContext
	surface C.EGLSurface
}

// Open initializes the default EGL display and makes a new context current.
func Open() (*Context, error) {
	dpy := C.default_display()
	if dpy == 0 {
		return nil, fmt.Errorf("failed to get EGL display")
	}

	var major, minor C.EGLint
	if C.eglInitialize(dpy, &major, &minor) == C.EGL_FALSE {
		return nil, fmt.Errorf("failed to initialize EGL: 0x%x", int(C.eglGetError()))
	}
	log.Debugf("EGL %d.%d initialized", int(major), int(minor))

	if C.eglBindAPI(clientAPI) == C.EGL_FALSE {
		C.eglTerminate(dpy)
		return nil, fmt.Errorf("EGL does not support OpenGL ES")
	}

	attribs := eglInts(configAttribs())
	var config C.EGLConfig
	var numConfigs C.EGLint
	if C.eglChooseConfig(dpy, &attribs[0], &config, 1, &numConfigs) == C.EGL_FALSE || numConfigs == 0 {
		C.eglTerminate(dpy)
		return nil, fmt.Errorf("no suitable EGL config")
	}

	pbuf := eglInts(pbufferAttribs())
	surface := C.eglCreatePbufferSurface(dpy, config, &pbuf[0])
	if surface == C.no_surface() {
		C.eglTerminate(dpy)
		return nil, fmt.Errorf("failed to create EGL pbuffer: 0x%x", int(C.eglGetError()))
	}

	ctxAttribs := eglInts(contextAttribs())
	ctx := C.eglCreateContext(dpy, config, C.no_context(), &ctxAttribs[0])
	if ctx == C.no_context() {
		C.eglDestroySurface(dpy, surface)
		C.eglTerminate(dpy)
		return nil, fmt.Errorf("failed to create EGL context: 0x%x", int(C.eglGetError()))
	}

	if C.eglMakeCurrent(dpy, surface, surface, ctx) == C.EGL_FALSE {
		C.eglDestroyContext(dpy, ctx)
		C.eglDestroySurface(dpy, surface)
		C.eglTerminate(dpy)
		return nil, fmt.Errorf("failed to make EGL context current")
	}

	return &Context{display: dpy, context: ctx, surface: surface}, nil
}

// ProcAddress resolves a GL entry point for the current context.
func (c *Context) ProcAddress(name string) unsafe.Pointer {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return C.proc_address(cname)
}

// Close releases the context. Any GL objects must be deleted before.
func (c *Context) Close() {
	if c.display == 0 {
		return
	}
	C.eglMakeCurrent(c.display, C.no_surface(), C.no_surface(), C.no_context())
	C.eglDestroyContext(c.display, c.context)
	C.eglDestroySurface(c.display, c.surface)
	C.eglTerminate(c.display)
	c.display = 0
}
