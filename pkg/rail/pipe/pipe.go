package pipe

// Plain left-to-right application for total functions. There is no error
// handling on this ladder: a panicking step propagates to the caller. A
// chain longer than eight steps is built by feeding one pipe's output into
// the next.

// Pipe0 is the zero-step pipe: identity.
func Pipe0[A any](initial A) A {
	return initial
}

func Pipe1[A, B any](initial A, step1 func(A) B) B {
	return step1(initial)
}

func Pipe2[A, B, C any](initial A, step1 func(A) B, step2 func(B) C) C {
	return step2(step1(initial))
}

func Pipe3[A, B, C, D any](initial A, step1 func(A) B, step2 func(B) C, step3 func(C) D) D {
	return step3(step2(step1(initial)))
}

func Pipe4[A, B, C, D, E any](initial A, step1 func(A) B, step2 func(B) C, step3 func(C) D,
	step4 func(D) E) E {
	return step4(step3(step2(step1(initial))))
}

func Pipe5[A, B, C, D, E, F any](initial A, step1 func(A) B, step2 func(B) C, step3 func(C) D,
	step4 func(D) E, step5 func(E) F) F {
	return step5(step4(step3(step2(step1(initial)))))
}

func Pipe6[A, B, C, D, E, F, G any](initial A, step1 func(A) B, step2 func(B) C, step3 func(C) D,
	step4 func(D) E, step5 func(E) F, step6 func(F) G) G {
	return step6(step5(step4(step3(step2(step1(initial))))))
}

func Pipe7[A, B, C, D, E, F, G, H any](initial A, step1 func(A) B, step2 func(B) C, step3 func(C) D,
	step4 func(D) E, step5 func(E) F, step6 func(F) G, step7 func(G) H) H {
	return step7(step6(step5(step4(step3(step2(step1(initial)))))))
}

func Pipe8[A, B, C, D, E, F, G, H, I any](initial A, step1 func(A) B, step2 func(B) C, step3 func(C) D,
	step4 func(D) E, step5 func(E) F, step6 func(F) G, step7 func(G) H, step8 func(H) I) I {
	return step8(step7(step6(step5(step4(step3(step2(step1(initial))))))))
}
