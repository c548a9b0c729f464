package render

// script is shared by every slide. Grading compares the checked option ids
// with the data-correct ones as sets; the running score changes only when an
// interaction flips between solved and unsolved.
const script = `(function () {
  "use strict";
  var root = document.querySelector('[data-role="courseware"]');
  if (!root) { return; }
  var toArray = function (list) { return Array.prototype.slice.call(list); };
  var slides = toArray(root.querySelectorAll('[data-role="slide"]'));
  var prev = root.querySelector('[data-action="prev"]');
  var next = root.querySelector('[data-action="next"]');
  var progress = root.querySelector('[data-role="progress"]');
  var score = root.querySelector('[data-role="score"]');
  var forms = toArray(root.querySelectorAll('[data-role="interaction"]'));
  var total = forms.length;
  var correct = 0;
  var current = 0;

  function show(index) {
    if (!slides.length) { return; }
    current = Math.max(0, Math.min(index, slides.length - 1));
    slides.forEach(function (slide, i) { slide.hidden = i !== current; });
    if (prev) { prev.disabled = current === 0; }
    if (next) { next.disabled = current === slides.length - 1; }
    if (progress) { progress.textContent = (current + 1) + " / " + slides.length; }
  }

  function renderScore() {
    if (score) { score.textContent = correct + " / " + total; }
  }

  if (prev) { prev.addEventListener("click", function () { show(current - 1); }); }
  if (next) { next.addEventListener("click", function () { show(current + 1); }); }

  forms.forEach(function (form) {
    var solved = false;
    var inputs = toArray(form.querySelectorAll("input[data-option-id]"));
    var feedback = form.querySelector('[data-role="feedback"]');
    var explanation = form.querySelector('[data-role="explanation"]');

    function optionOf(input) { return input.closest('[data-role="option"]'); }

    function clearMarks() {
      inputs.forEach(function (input) {
        var option = optionOf(input);
        if (option) { option.classList.remove("is-correct", "is-incorrect"); }
      });
    }

    form.addEventListener("submit", function (event) {
      event.preventDefault();
      var selected = [];
      var expected = [];
      inputs.forEach(function (input) {
        var id = input.getAttribute("data-option-id");
        if (input.checked) { selected.push(id); }
        if (input.getAttribute("data-correct") === "true") { expected.push(id); }
      });
      if (!selected.length) {
        if (feedback) { feedback.textContent = "Choose an answer first."; }
        return;
      }
      selected.sort();
      expected.sort();
      var ok = selected.length === expected.length && selected.every(function (id, i) { return id === expected[i]; });
      if (ok && !solved) { correct++; }
      if (!ok && solved) { correct--; }
      solved = ok;

      clearMarks();
      inputs.forEach(function (input) {
        var option = optionOf(input);
        if (!option) { return; }
        if (input.getAttribute("data-correct") === "true") {
          option.classList.add("is-correct");
        } else if (input.checked) {
          option.classList.add("is-incorrect");
        }
      });
      form.classList.toggle("is-solved", ok);
      if (feedback) { feedback.textContent = ok ? "Correct!" : "Not quite, try again."; }
      if (explanation) { explanation.hidden = false; }
      renderScore();
    });

    form.addEventListener("reset", function () {
      if (solved) { correct--; }
      solved = false;
      clearMarks();
      form.classList.remove("is-solved");
      if (feedback) { feedback.textContent = ""; }
      if (explanation) { explanation.hidden = true; }
      renderScore();
    });
  });

  show(0);
  renderScore();
})();
`
