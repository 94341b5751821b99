//go:build android

// Package jni implements typed helpers for calling into the Android JVM
// through the Java Native Interface: class, method and field lookups by
// name and signature, method invocation, global reference management and
// string conversion. Pending Java exceptions are always translated into Go
// errors and cleared before a helper returns, so no fault is ever left
// behind in the VM.
package jni

/*
#cgo CFLAGS: -Werror

#include <jni.h>
#include <stdlib.h>

static jint jni_GetEnv(JavaVM *vm, JNIEnv **env, jint version) {
	return (*vm)->GetEnv(vm, (void **)env, version);
}

static jint jni_AttachCurrentThread(JavaVM *vm, JNIEnv **p_env, void *thr_args) {
	return (*vm)->AttachCurrentThread(vm, p_env, thr_args);
}

static jint jni_DetachCurrentThread(JavaVM *vm) {
	return (*vm)->DetachCurrentThread(vm);
}

static jint jni_GetJavaVM(JNIEnv *env, JavaVM **jvm) {
	return (*env)->GetJavaVM(env, jvm);
}

static jclass jni_FindClass(JNIEnv *env, const char *name) {
	return (*env)->FindClass(env, name);
}

static jclass jni_GetObjectClass(JNIEnv *env, jobject obj) {
	return (*env)->GetObjectClass(env, obj);
}

static jclass jni_GetSuperclass(JNIEnv *env, jclass clazz) {
	return (*env)->GetSuperclass(env, clazz);
}

static jmethodID jni_GetMethodID(JNIEnv *env, jclass clazz, const char *name, const char *sig) {
	return (*env)->GetMethodID(env, clazz, name, sig);
}

static jmethodID jni_GetStaticMethodID(JNIEnv *env, jclass clazz, const char *name, const char *sig) {
	return (*env)->GetStaticMethodID(env, clazz, name, sig);
}

static jfieldID jni_GetStaticFieldID(JNIEnv *env, jclass clazz, const char *name, const char *sig) {
	return (*env)->GetStaticFieldID(env, clazz, name, sig);
}

static jobject jni_GetStaticObjectField(JNIEnv *env, jclass clazz, jfieldID field) {
	return (*env)->GetStaticObjectField(env, clazz, field);
}

static jobject jni_NewObjectA(JNIEnv *env, jclass clazz, jmethodID ctor, const jvalue *args) {
	return (*env)->NewObjectA(env, clazz, ctor, args);
}

static jobject jni_CallObjectMethodA(JNIEnv *env, jobject obj, jmethodID method, const jvalue *args) {
	return (*env)->CallObjectMethodA(env, obj, method, args);
}

static void jni_CallVoidMethodA(JNIEnv *env, jobject obj, jmethodID method, const jvalue *args) {
	(*env)->CallVoidMethodA(env, obj, method, args);
}

static jobject jni_CallStaticObjectMethodA(JNIEnv *env, jclass cls, jmethodID method, const jvalue *args) {
	return (*env)->CallStaticObjectMethodA(env, cls, method, args);
}

static jobject jni_NewGlobalRef(JNIEnv *env, jobject obj) {
	return (*env)->NewGlobalRef(env, obj);
}

static void jni_DeleteGlobalRef(JNIEnv *env, jobject obj) {
	(*env)->DeleteGlobalRef(env, obj);
}

static void jni_DeleteLocalRef(JNIEnv *env, jobject obj) {
	(*env)->DeleteLocalRef(env, obj);
}

static jstring jni_NewString(JNIEnv *env, const jchar *unicodeChars, jsize len) {
	return (*env)->NewString(env, unicodeChars, len);
}

static jsize jni_GetStringLength(JNIEnv *env, jstring str) {
	return (*env)->GetStringLength(env, str);
}

static const jchar *jni_GetStringChars(JNIEnv *env, jstring str) {
	return (*env)->GetStringChars(env, str, NULL);
}

static void jni_ReleaseStringChars(JNIEnv *env, jstring str, const jchar *chars) {
	(*env)->ReleaseStringChars(env, str, chars);
}

static jthrowable jni_ExceptionOccurred(JNIEnv *env) {
	return (*env)->ExceptionOccurred(env);
}

static void jni_ExceptionClear(JNIEnv *env) {
	(*env)->ExceptionClear(env);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"runtime"
	"unicode/utf16"
	"unsafe"
)

type (
	// JVM is the Java virtual machine hosting the process.
	JVM C.JavaVM
	// Env is a thread-bound JNI environment.
	Env C.JNIEnv

	Class    C.jclass
	Object   C.jobject
	MethodID C.jmethodID
	FieldID  C.jfieldID
	String   C.jstring
	// Value carries one JNI call argument. All JNI types fit in 64 bits.
	Value uint64
)

func cenv(e *Env) *C.JNIEnv {
	return (*C.JNIEnv)(unsafe.Pointer(e))
}

func cvm(vm *JVM) *C.JavaVM {
	return (*C.JavaVM)(unsafe.Pointer(vm))
}

// VMFor returns the JVM owning env.
func VMFor(e *Env) (*JVM, error) {
	var vm *C.JavaVM
	if res := C.jni_GetJavaVM(cenv(e), &vm); res != 0 {
		return nil, fmt.Errorf("jni: GetJavaVM failed with error %d", res)
	}
	return (*JVM)(unsafe.Pointer(vm)), nil
}

// Do invokes f with a JNI environment for the calling thread, attaching the
// thread to the VM first if necessary. Attachment is idempotent and cheap to
// repeat; the environment is not valid after f returns.
func Do(vm *JVM, f func(e *Env) error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	var env *C.JNIEnv
	if res := C.jni_GetEnv(cvm(vm), &env, C.JNI_VERSION_1_6); res != C.JNI_OK {
		if res != C.JNI_EDETACHED {
			return fmt.Errorf("jni: GetEnv failed with error %d", res)
		}
		if C.jni_AttachCurrentThread(cvm(vm), &env, nil) != C.JNI_OK {
			return errors.New("jni: AttachCurrentThread failed")
		}
		defer C.jni_DetachCurrentThread(cvm(vm))
	}
	return f((*Env)(unsafe.Pointer(env)))
}

// FindClass looks up a class by its slash-separated binary name.
func FindClass(e *Env, name string) (Class, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	cls := C.jni_FindClass(cenv(e), cname)
	if err := exception(e); err != nil {
		return 0, fmt.Errorf("jni: class %s not found: %w", name, err)
	}
	if cls == 0 {
		return 0, fmt.Errorf("jni: class %s not found", name)
	}
	return Class(cls), nil
}

// GetObjectClass returns the class of obj.
func GetObjectClass(e *Env, obj Object) (Class, error) {
	if obj == 0 {
		return 0, errors.New("jni: GetObjectClass on null object")
	}
	cls := C.jni_GetObjectClass(cenv(e), C.jobject(obj))
	if err := exception(e); err != nil {
		return 0, err
	}
	return Class(cls), nil
}

// GetSuperclass returns the superclass of cls, or 0 for java.lang.Object.
func GetSuperclass(e *Env, cls Class) Class {
	super := C.jni_GetSuperclass(cenv(e), C.jclass(cls))
	return Class(super)
}

// GetMethodID looks up an instance method by name and type signature.
func GetMethodID(e *Env, cls Class, name, sig string) (MethodID, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	csig := C.CString(sig)
	defer C.free(unsafe.Pointer(csig))
	m := C.jni_GetMethodID(cenv(e), C.jclass(cls), cname, csig)
	// A missing method raises NoSuchMethodError rather than returning NULL.
	if err := exception(e); err != nil {
		return MethodID(m), fmt.Errorf("jni: method %s %s not found: %w", name, sig, err)
	}
	return MethodID(m), nil
}

// GetStaticMethodID looks up a static method by name and type signature.
func GetStaticMethodID(e *Env, cls Class, name, sig string) (MethodID, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	csig := C.CString(sig)
	defer C.free(unsafe.Pointer(csig))
	m := C.jni_GetStaticMethodID(cenv(e), C.jclass(cls), cname, csig)
	if err := exception(e); err != nil {
		return MethodID(m), fmt.Errorf("jni: static method %s %s not found: %w", name, sig, err)
	}
	return MethodID(m), nil
}

// GetStaticFieldID looks up a static field by name and type signature.
func GetStaticFieldID(e *Env, cls Class, name, sig string) (FieldID, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	csig := C.CString(sig)
	defer C.free(unsafe.Pointer(csig))
	f := C.jni_GetStaticFieldID(cenv(e), C.jclass(cls), cname, csig)
	if err := exception(e); err != nil {
		return FieldID(f), fmt.Errorf("jni: static field %s %s not found: %w", name, sig, err)
	}
	return FieldID(f), nil
}

// GetStaticObjectField reads a static object field.
func GetStaticObjectField(e *Env, cls Class, field FieldID) (Object, error) {
	obj := C.jni_GetStaticObjectField(cenv(e), C.jclass(cls), C.jfieldID(field))
	return Object(obj), exception(e)
}

// NewObject constructs a new instance of cls with the given constructor.
func NewObject(e *Env, cls Class, ctor MethodID, args ...Value) (Object, error) {
	obj := C.jni_NewObjectA(cenv(e), C.jclass(cls), C.jmethodID(ctor), varArgs(args))
	return Object(obj), exception(e)
}

func CallObjectMethod(e *Env, obj Object, method MethodID, args ...Value) (Object, error) {
	res := C.jni_CallObjectMethodA(cenv(e), C.jobject(obj), C.jmethodID(method), varArgs(args))
	return Object(res), exception(e)
}

func CallVoidMethod(e *Env, obj Object, method MethodID, args ...Value) error {
	C.jni_CallVoidMethodA(cenv(e), C.jobject(obj), C.jmethodID(method), varArgs(args))
	return exception(e)
}

func CallStaticObjectMethod(e *Env, cls Class, method MethodID, args ...Value) (Object, error) {
	res := C.jni_CallStaticObjectMethodA(cenv(e), C.jclass(cls), C.jmethodID(method), varArgs(args))
	return Object(res), exception(e)
}

// NewGlobalRef pins obj so it outlives the call that produced it. The
// reference is released by DeleteGlobalRef, or by process exit.
func NewGlobalRef(e *Env, obj Object) Object {
	return Object(C.jni_NewGlobalRef(cenv(e), C.jobject(obj)))
}

func DeleteGlobalRef(e *Env, obj Object) {
	C.jni_DeleteGlobalRef(cenv(e), C.jobject(obj))
}

func DeleteLocalRef(e *Env, obj Object) {
	C.jni_DeleteLocalRef(cenv(e), C.jobject(obj))
}

// JavaString converts a Go string to a JVM jstring.
func JavaString(e *Env, str string) String {
	if str == "" {
		return 0
	}
	utf16Chars := utf16.Encode([]rune(str))
	res := C.jni_NewString(cenv(e), (*C.jchar)(unsafe.Pointer(&utf16Chars[0])), C.jsize(len(utf16Chars)))
	return String(res)
}

// GoString converts a JVM jstring to a Go string.
func GoString(e *Env, str String) string {
	if str == 0 {
		return ""
	}
	strlen := C.jni_GetStringLength(cenv(e), C.jstring(str))
	chars := C.jni_GetStringChars(cenv(e), C.jstring(str))
	defer C.jni_ReleaseStringChars(cenv(e), C.jstring(str), chars)
	utf16Chars := unsafe.Slice((*uint16)(unsafe.Pointer(chars)), int(strlen))
	return string(utf16.Decode(utf16Chars))
}

func varArgs(args []Value) *C.jvalue {
	if len(args) == 0 {
		return nil
	}
	return (*C.jvalue)(unsafe.Pointer(&args[0]))
}

// exception returns an error describing the pending Java exception, or nil
// if none is pending. The exception is always cleared.
func exception(e *Env) error {
	thr := C.jni_ExceptionOccurred(cenv(e))
	if thr == 0 {
		return nil
	}
	C.jni_ExceptionClear(cenv(e))
	cls := C.jni_GetObjectClass(cenv(e), C.jobject(thr))
	toString, err := GetMethodID(e, Class(cls), "toString", "()Ljava/lang/String;")
	if err != nil {
		return err
	}
	msg, err := CallObjectMethod(e, Object(thr), toString)
	if err != nil {
		return err
	}
	return errors.New(GoString(e, String(msg)))
}
