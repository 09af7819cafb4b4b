//go:build android

// Package gles provides the EGL/GLES2 presentation backend for Android.
// One EGL display connection exists per process; each platform surface gets
// its own window surface and context, torn down synchronously when the
// platform destroys the native surface.
package gles

/*
#cgo LDFLAGS: -lEGL -lGLESv2 -landroid

#include <EGL/egl.h>
#include <GLES2/gl2.h>
#include <android/native_window.h>
*/
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/go-ember/ember/pkg/geom"
	"github.com/go-ember/ember/pkg/paint"
	"github.com/go-ember/ember/pkg/surface"
)

// Backend is the GLES presentation backend. Holds the process-wide EGL
// display connection.
type Backend struct {
	display C.EGLDisplay
	config  C.EGLConfig
}

// NewBackend connects to the default EGL display and picks an RGBA8888
// window config with no depth or stencil.
func NewBackend() *Backend {
	return &Backend{}
}

func (b *Backend) ensureDisplay() error {
	if b.display != nil {
		return nil
	}
	display := C.eglGetDisplay(C.EGL_DEFAULT_DISPLAY)
	if display == C.EGLDisplay(C.EGL_NO_DISPLAY) {
		return fmt.Errorf("gles: no default EGL display")
	}
	if C.eglInitialize(display, nil, nil) == C.EGL_FALSE {
		return fmt.Errorf("gles: eglInitialize failed: 0x%x", C.eglGetError())
	}

	attribs := []C.EGLint{
		C.EGL_RENDERABLE_TYPE, C.EGL_OPENGL_ES2_BIT,
		C.EGL_SURFACE_TYPE, C.EGL_WINDOW_BIT,
		C.EGL_RED_SIZE, 8,
		C.EGL_GREEN_SIZE, 8,
		C.EGL_BLUE_SIZE, 8,
		C.EGL_ALPHA_SIZE, 8,
		C.EGL_DEPTH_SIZE, 0,
		C.EGL_STENCIL_SIZE, 0,
		C.EGL_NONE,
	}
	var config C.EGLConfig
	var numConfigs C.EGLint
	if C.eglChooseConfig(display, &attribs[0], &config, 1, &numConfigs) == C.EGL_FALSE || numConfigs == 0 {
		return fmt.Errorf("gles: no matching EGL config: 0x%x", C.eglGetError())
	}

	b.display = display
	b.config = config
	return nil
}

// CreateTarget builds a window surface and ES2 context for the handle and
// makes it current on the calling (render) thread.
func (b *Backend) CreateTarget(h surface.Handle, size geom.ISize) (surface.Target, error) {
	if err := b.ensureDisplay(); err != nil {
		return nil, err
	}

	window := (*C.ANativeWindow)(unsafe.Pointer(h.NativePointer()))
	if window == nil {
		return nil, fmt.Errorf("gles: nil native window")
	}

	eglSurface := C.eglCreateWindowSurface(b.display, b.config, C.EGLNativeWindowType(unsafe.Pointer(window)), nil)
	if eglSurface == C.EGLSurface(C.EGL_NO_SURFACE) {
		return nil, fmt.Errorf("gles: eglCreateWindowSurface failed: 0x%x", C.eglGetError())
	}

	ctxAttribs := []C.EGLint{C.EGL_CONTEXT_CLIENT_VERSION, 2, C.EGL_NONE}
	ctx := C.eglCreateContext(b.display, b.config, C.EGLContext(C.EGL_NO_CONTEXT), &ctxAttribs[0])
	if ctx == C.EGLContext(C.EGL_NO_CONTEXT) {
		C.eglDestroySurface(b.display, eglSurface)
		return nil, fmt.Errorf("gles: eglCreateContext failed: 0x%x", C.eglGetError())
	}

	if C.eglMakeCurrent(b.display, eglSurface, eglSurface, ctx) == C.EGL_FALSE {
		C.eglDestroyContext(b.display, ctx)
		C.eglDestroySurface(b.display, eglSurface)
		return nil, fmt.Errorf("gles: eglMakeCurrent failed: 0x%x", C.eglGetError())
	}

	t := &target{backend: b, surface: eglSurface, context: ctx, size: size}
	if err := t.initPipeline(); err != nil {
		t.Destroy()
		return nil, err
	}
	return t, nil
}

// target is one live EGL window surface plus the mesh-drawing pipeline.
type target struct {
	backend  *Backend
	surface  C.EGLSurface
	context  C.EGLContext
	size     geom.ISize
	program  C.GLuint
	textures map[uint64]C.GLuint
}

func (t *target) Resize(size geom.ISize) error {
	t.size = size
	return nil
}

func (t *target) Present(out *paint.Output) error {
	d := t.backend.display
	if C.eglMakeCurrent(d, t.surface, t.surface, t.context) == C.EGL_FALSE {
		return fmt.Errorf("gles: eglMakeCurrent failed: 0x%x", C.eglGetError())
	}

	C.glViewport(0, 0, C.GLsizei(t.size.Width), C.GLsizei(t.size.Height))
	C.glClearColor(0, 0, 0, 1)
	C.glClear(C.GL_COLOR_BUFFER_BIT)

	for _, up := range out.TextureUpdates {
		t.uploadTexture(up)
	}
	for _, mesh := range out.Meshes {
		t.drawMesh(mesh)
	}
	for _, id := range out.TexturesToFree {
		if tex, ok := t.textures[id]; ok {
			C.glDeleteTextures(1, &tex)
			delete(t.textures, id)
		}
	}

	if C.eglSwapBuffers(d, t.surface) == C.EGL_FALSE {
		return fmt.Errorf("gles: eglSwapBuffers failed: 0x%x", C.eglGetError())
	}
	return nil
}

// Destroy releases the context and surface synchronously. The platform
// frees the native window as soon as its destroyed callback returns, so
// nothing here may be deferred.
func (t *target) Destroy() {
	d := t.backend.display
	C.eglMakeCurrent(d, C.EGLSurface(C.EGL_NO_SURFACE), C.EGLSurface(C.EGL_NO_SURFACE), C.EGLContext(C.EGL_NO_CONTEXT))
	for _, tex := range t.textures {
		tex := tex
		C.glDeleteTextures(1, &tex)
	}
	t.textures = nil
	if t.context != C.EGLContext(C.EGL_NO_CONTEXT) {
		C.eglDestroyContext(d, t.context)
		t.context = C.EGLContext(C.EGL_NO_CONTEXT)
	}
	if t.surface != C.EGLSurface(C.EGL_NO_SURFACE) {
		C.eglDestroySurface(d, t.surface)
		t.surface = C.EGLSurface(C.EGL_NO_SURFACE)
	}
}

const vertexShaderSrc = `
attribute vec2 a_pos;
attribute vec2 a_uv;
attribute vec4 a_color;
uniform vec2 u_screen;
varying vec2 v_uv;
varying vec4 v_color;
void main() {
	vec2 ndc = vec2(2.0 * a_pos.x / u_screen.x - 1.0, 1.0 - 2.0 * a_pos.y / u_screen.y);
	gl_Position = vec4(ndc, 0.0, 1.0);
	v_uv = a_uv;
	v_color = a_color;
}` + "\x00"

const fragmentShaderSrc = `
precision mediump float;
uniform sampler2D u_tex;
varying vec2 v_uv;
varying vec4 v_color;
void main() {
	gl_FragColor = v_color * texture2D(u_tex, v_uv);
}` + "\x00"

func (t *target) initPipeline() error {
	vs, err := compileShader(C.GL_VERTEX_SHADER, vertexShaderSrc)
	if err != nil {
		return err
	}
	fs, err := compileShader(C.GL_FRAGMENT_SHADER, fragmentShaderSrc)
	if err != nil {
		C.glDeleteShader(vs)
		return err
	}
	program := C.glCreateProgram()
	C.glAttachShader(program, vs)
	C.glAttachShader(program, fs)
	C.glLinkProgram(program)
	C.glDeleteShader(vs)
	C.glDeleteShader(fs)

	var linked C.GLint
	C.glGetProgramiv(program, C.GL_LINK_STATUS, &linked)
	if linked == C.GL_FALSE {
		C.glDeleteProgram(program)
		return fmt.Errorf("gles: program link failed")
	}

	t.program = program
	t.textures = make(map[uint64]C.GLuint)
	C.glEnable(C.GL_BLEND)
	C.glBlendFunc(C.GL_ONE, C.GL_ONE_MINUS_SRC_ALPHA)
	return nil
}

func compileShader(kind C.GLenum, src string) (C.GLuint, error) {
	shader := C.glCreateShader(kind)
	csrc := (*C.GLchar)(unsafe.Pointer(unsafe.StringData(src)))
	C.glShaderSource(shader, 1, &csrc, nil)
	C.glCompileShader(shader)
	var compiled C.GLint
	C.glGetShaderiv(shader, C.GL_COMPILE_STATUS, &compiled)
	if compiled == C.GL_FALSE {
		C.glDeleteShader(shader)
		return 0, fmt.Errorf("gles: shader compile failed")
	}
	return shader, nil
}

func (t *target) uploadTexture(up paint.TextureUpdate) {
	tex, ok := t.textures[up.ID]
	if !ok {
		C.glGenTextures(1, &tex)
		t.textures[up.ID] = tex
	}
	C.glBindTexture(C.GL_TEXTURE_2D, tex)
	C.glTexParameteri(C.GL_TEXTURE_2D, C.GL_TEXTURE_MIN_FILTER, C.GL_LINEAR)
	C.glTexParameteri(C.GL_TEXTURE_2D, C.GL_TEXTURE_MAG_FILTER, C.GL_LINEAR)
	var pixels unsafe.Pointer
	if len(up.Pixels) > 0 {
		pixels = unsafe.Pointer(&up.Pixels[0])
	}
	C.glTexImage2D(C.GL_TEXTURE_2D, 0, C.GL_RGBA,
		C.GLsizei(up.Size.Width), C.GLsizei(up.Size.Height),
		0, C.GL_RGBA, C.GL_UNSIGNED_BYTE, pixels)
}

func (t *target) drawMesh(mesh paint.Mesh) {
	if len(mesh.Indices) == 0 {
		return
	}
	tex, ok := t.textures[mesh.Texture]
	if !ok {
		return
	}

	C.glUseProgram(t.program)
	C.glBindTexture(C.GL_TEXTURE_2D, tex)

	screen := C.glGetUniformLocation(t.program, (*C.GLchar)(unsafe.Pointer(unsafe.StringData("u_screen\x00"))))
	C.glUniform2f(screen, C.GLfloat(t.size.Width), C.GLfloat(t.size.Height))

	stride := C.GLsizei(unsafe.Sizeof(mesh.Vertices[0]))
	base := unsafe.Pointer(&mesh.Vertices[0])

	posLoc := C.GLuint(C.glGetAttribLocation(t.program, (*C.GLchar)(unsafe.Pointer(unsafe.StringData("a_pos\x00")))))
	uvLoc := C.GLuint(C.glGetAttribLocation(t.program, (*C.GLchar)(unsafe.Pointer(unsafe.StringData("a_uv\x00")))))
	colorLoc := C.GLuint(C.glGetAttribLocation(t.program, (*C.GLchar)(unsafe.Pointer(unsafe.StringData("a_color\x00")))))

	C.glEnableVertexAttribArray(posLoc)
	C.glEnableVertexAttribArray(uvLoc)
	C.glEnableVertexAttribArray(colorLoc)
	C.glVertexAttribPointer(posLoc, 2, C.GL_FLOAT, C.GL_FALSE, stride, base)
	C.glVertexAttribPointer(uvLoc, 2, C.GL_FLOAT, C.GL_FALSE, stride, unsafe.Add(base, 8))
	C.glVertexAttribPointer(colorLoc, 4, C.GL_UNSIGNED_BYTE, C.GL_TRUE, stride, unsafe.Add(base, 16))

	C.glDrawElements(C.GL_TRIANGLES, C.GLsizei(len(mesh.Indices)), C.GL_UNSIGNED_INT, unsafe.Pointer(&mesh.Indices[0]))

	C.glDisableVertexAttribArray(posLoc)
	C.glDisableVertexAttribArray(uvLoc)
	C.glDisableVertexAttribArray(colorLoc)
}
