//go:build android

package app

import (
	"github.com/pkg/errors"

	"github.com/droidglue/droidglue/jni"
)

const (
	actionView = "android.intent.action.VIEW"

	// Intent.FLAG_ACTIVITY_NEW_TASK; required when launching from a
	// non-activity context.
	flagActivityNewTask = 0x10000000
)

// androidBrowser launches URLs through an ACTION_VIEW intent dispatched by
// the hosting activity.
type androidBrowser struct {
	vm       *jni.JVM
	activity jni.Object

	intentCls     jni.Class
	uriCls        jni.Class
	intentCtor    jni.MethodID
	addFlags      jni.MethodID
	uriParse      jni.MethodID
	startActivity jni.MethodID
}

func (b *androidBrowser) Resolve() error {
	return jni.Do(b.vm, func(env *jni.Env) error {
		intentCls, err := jni.FindClass(env, "android/content/Intent")
		if err != nil {
			return errors.Wrap(err, "browser: failed to find Intent class")
		}
		uriCls, err := jni.FindClass(env, "android/net/Uri")
		if err != nil {
			return errors.Wrap(err, "browser: failed to find Uri class")
		}
		if b.intentCtor, err = jni.GetMethodID(env, intentCls, "<init>", "(Ljava/lang/String;Landroid/net/Uri;)V"); err != nil {
			return errors.Wrap(err, "browser: failed to find Intent constructor")
		}
		if b.addFlags, err = jni.GetMethodID(env, intentCls, "addFlags", "(I)Landroid/content/Intent;"); err != nil {
			return errors.Wrap(err, "browser: failed to find addFlags method")
		}
		if b.uriParse, err = jni.GetStaticMethodID(env, uriCls, "parse", "(Ljava/lang/String;)Landroid/net/Uri;"); err != nil {
			return errors.Wrap(err, "browser: failed to find Uri.parse method")
		}

		actCls, err := jni.GetObjectClass(env, b.activity)
		if err != nil {
			return errors.Wrap(err, "browser: failed to get activity class")
		}
		if b.startActivity, err = jni.GetMethodID(env, actCls, "startActivity", "(Landroid/content/Intent;)V"); err != nil {
			return errors.Wrap(err, "browser: failed to find startActivity method")
		}

		b.intentCls = jni.Class(jni.NewGlobalRef(env, jni.Object(intentCls)))
		b.uriCls = jni.Class(jni.NewGlobalRef(env, jni.Object(uriCls)))
		return nil
	})
}

func (b *androidBrowser) OpenURL(url string) error {
	return jni.Do(b.vm, func(env *jni.Env) error {
		uri, err := jni.CallStaticObjectMethod(env, b.uriCls, b.uriParse, jni.Value(jni.JavaString(env, url)))
		if err != nil {
			return errors.Wrap(err, "browser: Uri.parse failed")
		}
		intent, err := jni.NewObject(env, b.intentCls, b.intentCtor, jni.Value(jni.JavaString(env, actionView)), jni.Value(uri))
		if err != nil {
			return errors.Wrap(err, "browser: failed to construct intent")
		}
		if _, err := jni.CallObjectMethod(env, intent, b.addFlags, jni.Value(flagActivityNewTask)); err != nil {
			return errors.Wrap(err, "browser: addFlags failed")
		}
		if err := jni.CallVoidMethod(env, b.activity, b.startActivity, jni.Value(intent)); err != nil {
			return errors.Wrap(err, "browser: startActivity failed")
		}
		return nil
	})
}
