// Package session ties the platform layer together for one VM run.
//
// Start resolves a program image path, classifies it by its magic bytes,
// unwraps it if it is archive-wrapped, and returns a Session owning one
// random generator and one heap for its lifetime. There is no ambient
// global state: the VM core holds the Session and calls through it.
//
//	sess, err := session.Start(session.Config{ImagePath: path})
//	if err != nil {
//	    // fatal startup error; the VM never ran
//	}
//	defer nothing // sessions hold no OS resources after Start
//
//	sess.SetRandomSeed(42)
//	v := sess.GetRandom()
//
// Restart re-runs the locate/classify step and invokes any handlers
// registered with OnRestart, giving a front-end shell one hook per
// session start.
package session
