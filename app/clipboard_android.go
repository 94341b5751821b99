//go:build android

package app

import (
	"github.com/pkg/errors"

	"github.com/droidglue/droidglue"
	"github.com/droidglue/droidglue/jni"
)

// androidClipboard drives android.content.ClipboardManager through JNI.
// Resolution walks the documented lookup chain: the application context,
// the CLIPBOARD_SERVICE name, getSystemService and the ClipData accessors.
// Every resolved handle is pinned with a global reference and kept for the
// process lifetime.
type androidClipboard struct {
	vm       *jni.JVM
	activity jni.Object

	manager        jni.Object
	clipDataCls    jni.Class
	getPrimaryClip jni.MethodID
	setPrimaryClip jni.MethodID
	newPlainText   jni.MethodID
	getItemAt      jni.MethodID
	getText        jni.MethodID
	toString       jni.MethodID
}

func (c *androidClipboard) Resolve() error {
	return jni.Do(c.vm, func(env *jni.Env) error {
		appCtx, err := applicationContext(env, c.activity)
		if err != nil {
			return err
		}
		ctxCls, err := jni.GetObjectClass(env, appCtx)
		if err != nil {
			return errors.Wrap(err, "clipboard: failed to get application context class")
		}

		baseCtxCls, err := jni.FindClass(env, "android/content/Context")
		if err != nil {
			return errors.Wrap(err, "clipboard: failed to find Context class")
		}
		serviceField, err := jni.GetStaticFieldID(env, baseCtxCls, "CLIPBOARD_SERVICE", "Ljava/lang/String;")
		if err != nil {
			return errors.Wrap(err, "clipboard: failed to find CLIPBOARD_SERVICE field")
		}
		serviceName, err := jni.GetStaticObjectField(env, baseCtxCls, serviceField)
		if err != nil {
			return errors.Wrap(err, "clipboard: failed to read CLIPBOARD_SERVICE field")
		}

		getService, err := jni.GetMethodID(env, ctxCls, "getSystemService", "(Ljava/lang/String;)Ljava/lang/Object;")
		if err != nil {
			return errors.Wrap(err, "clipboard: failed to find getSystemService method")
		}
		manager, err := jni.CallObjectMethod(env, appCtx, getService, jni.Value(serviceName))
		if err != nil {
			return errors.Wrap(err, "clipboard: getSystemService failed")
		}
		if manager == 0 {
			return errors.Wrap(droidglue.ErrNoService, "clipboard: no clipboard service")
		}

		managerCls, err := jni.FindClass(env, "android/content/ClipboardManager")
		if err != nil {
			return errors.Wrap(err, "clipboard: failed to find ClipboardManager class")
		}
		if c.getPrimaryClip, err = jni.GetMethodID(env, managerCls, "getPrimaryClip", "()Landroid/content/ClipData;"); err != nil {
			return errors.Wrap(err, "clipboard: failed to find getPrimaryClip method")
		}
		if c.setPrimaryClip, err = jni.GetMethodID(env, managerCls, "setPrimaryClip", "(Landroid/content/ClipData;)V"); err != nil {
			return errors.Wrap(err, "clipboard: failed to find setPrimaryClip method")
		}

		clipDataCls, err := jni.FindClass(env, "android/content/ClipData")
		if err != nil {
			return errors.Wrap(err, "clipboard: failed to find ClipData class")
		}
		if c.newPlainText, err = jni.GetStaticMethodID(env, clipDataCls, "newPlainText", "(Ljava/lang/CharSequence;Ljava/lang/CharSequence;)Landroid/content/ClipData;"); err != nil {
			return errors.Wrap(err, "clipboard: failed to find newPlainText method")
		}
		if c.getItemAt, err = jni.GetMethodID(env, clipDataCls, "getItemAt", "(I)Landroid/content/ClipData$Item;"); err != nil {
			return errors.Wrap(err, "clipboard: failed to find getItemAt method")
		}

		itemCls, err := jni.FindClass(env, "android/content/ClipData$Item")
		if err != nil {
			return errors.Wrap(err, "clipboard: failed to find ClipData.Item class")
		}
		if c.getText, err = jni.GetMethodID(env, itemCls, "getText", "()Ljava/lang/CharSequence;"); err != nil {
			return errors.Wrap(err, "clipboard: failed to find getText method")
		}

		seqCls, err := jni.FindClass(env, "java/lang/CharSequence")
		if err != nil {
			return errors.Wrap(err, "clipboard: failed to find CharSequence class")
		}
		if c.toString, err = jni.GetMethodID(env, seqCls, "toString", "()Ljava/lang/String;"); err != nil {
			return errors.Wrap(err, "clipboard: failed to find toString method")
		}

		c.manager = jni.NewGlobalRef(env, manager)
		c.clipDataCls = jni.Class(jni.NewGlobalRef(env, jni.Object(clipDataCls)))
		return nil
	})
}

func (c *androidClipboard) ReadText() (string, error) {
	var text string
	err := jni.Do(c.vm, func(env *jni.Env) error {
		clip, err := jni.CallObjectMethod(env, c.manager, c.getPrimaryClip)
		if err != nil {
			return errors.Wrap(err, "clipboard: getPrimaryClip failed")
		}
		if clip == 0 {
			return droidglue.ErrNoText
		}
		item, err := jni.CallObjectMethod(env, clip, c.getItemAt, jni.Value(0))
		if err != nil {
			return errors.Wrap(err, "clipboard: getItemAt failed")
		}
		if item == 0 {
			return errors.New("clipboard: clip has no items")
		}
		seq, err := jni.CallObjectMethod(env, item, c.getText)
		if err != nil {
			return errors.Wrap(err, "clipboard: getText failed")
		}
		if seq == 0 {
			return droidglue.ErrNoText
		}
		str, err := jni.CallObjectMethod(env, seq, c.toString)
		if err != nil {
			return errors.Wrap(err, "clipboard: CharSequence.toString failed")
		}
		text = jni.GoString(env, jni.String(str))
		return nil
	})
	return text, err
}

func (c *androidClipboard) WriteText(s string) error {
	return jni.Do(c.vm, func(env *jni.Env) error {
		label := jni.JavaString(env, "text")
		content := jni.JavaString(env, s)
		clip, err := jni.CallStaticObjectMethod(env, c.clipDataCls, c.newPlainText, jni.Value(label), jni.Value(content))
		if err != nil {
			return errors.Wrap(err, "clipboard: newPlainText failed")
		}
		if err := jni.CallVoidMethod(env, c.manager, c.setPrimaryClip, jni.Value(clip)); err != nil {
			return errors.Wrap(err, "clipboard: setPrimaryClip failed")
		}
		return nil
	})
}

// applicationContext finds getApplicationContext on the activity class or
// one of its superclasses and calls it. Subclassed activities do not always
// expose the method on their own class.
func applicationContext(env *jni.Env, activity jni.Object) (jni.Object, error) {
	cls, err := jni.GetObjectClass(env, activity)
	if err != nil {
		return 0, errors.Wrap(err, "failed to get activity class")
	}
	var getAppCtx jni.MethodID
	for {
		m, err := jni.GetMethodID(env, cls, "getApplicationContext", "()Landroid/content/Context;")
		if err == nil {
			getAppCtx = m
			break
		}
		if cls = jni.GetSuperclass(env, cls); cls == 0 {
			return 0, errors.New("failed to find getApplicationContext method")
		}
	}
	ctx, err := jni.CallObjectMethod(env, activity, getAppCtx)
	if err != nil {
		return 0, errors.Wrap(err, "getApplicationContext failed")
	}
	if ctx == 0 {
		return 0, errors.New("application context is null")
	}
	return ctx, nil
}
